package serial

import (
	"io"
	"log/slog"

	"github.com/ardenmill/dmgcore/jeebie/addr"
	"github.com/ardenmill/dmgcore/jeebie/bit"
)

// FileSink is a SerialPort that appends every byte shifted out over the
// link cable to an io.Writer, in addition to completing the transfer
// state machine. Used to capture test ROM output to serial_out.dat.
//
// The transfer state machine mirrors LogSink exactly; only the sink for
// completed bytes differs.
type FileSink struct {
	irqHandler     func()
	sb, sc         byte
	transferActive bool
	countdown      int
	logger         *slog.Logger

	immediate bool
	defaultRX byte

	w io.Writer
}

type FileSinkOption func(*FileSink)

// WithFileSinkFixedTiming sets the sink to complete transfers after a
// fixed countdown (~4096 CPU cycles per byte on DMG) instead of
// immediately.
func WithFileSinkFixedTiming() FileSinkOption {
	return func(s *FileSink) { s.immediate = false }
}

// NewFileSink creates a serial device that writes every shifted byte to w.
// The passed function is called when a transfer completes, should be wired
// to request the Serial interrupt.
func NewFileSink(w io.Writer, irq func(), opts ...FileSinkOption) *FileSink {
	s := &FileSink{
		irqHandler: irq,
		immediate:  true,
		defaultRX:  0xFF,
		logger:     slog.Default(),
		w:          w,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

func (s *FileSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.maybeStartTransfer()
	default:
		panic("serial.FileSink: invalid write address")
	}
}

func (s *FileSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	default:
		panic("serial.FileSink: invalid read address")
	}
}

func (s *FileSink) Tick(cycles int) {
	if s.immediate || !s.transferActive {
		return
	}
	s.countdown -= cycles
	if s.countdown <= 0 {
		s.completeTransfer()
		s.countdown = 0
	}
}

func (s *FileSink) Reset() {
	s.sb = 0x00
	s.sc = 0x00
	s.transferActive = false
	s.countdown = 0
}

func (s *FileSink) maybeStartTransfer() {
	if s.transferActive {
		return
	}
	if !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}

	if s.w != nil {
		if _, err := s.w.Write([]byte{s.sb}); err != nil {
			s.logger.Warn("serial: failed to write byte to sink", "error", err)
		}
	}

	if s.immediate {
		s.completeTransfer()
		return
	}

	s.transferActive = true
	s.countdown = 4096
}

func (s *FileSink) completeTransfer() {
	s.sb = s.defaultRX
	s.sc = bit.Clear(7, s.sc)
	s.transferActive = false
	if s.irqHandler != nil {
		s.irqHandler()
	}
}
