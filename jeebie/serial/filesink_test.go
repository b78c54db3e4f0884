package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardenmill/dmgcore/jeebie/addr"
)

func TestFileSinkImmediateTransfer(t *testing.T) {
	var buf bytes.Buffer
	irqCount := 0
	sink := NewFileSink(&buf, func() { irqCount++ })

	message := "Hi\n"
	for _, b := range []byte(message) {
		sink.Write(addr.SB, b)
		sink.Write(addr.SC, 0x81) // start bit + internal clock
	}

	assert.Equal(t, message, buf.String())
	assert.Equal(t, len(message), irqCount)
	assert.Equal(t, byte(0xFF), sink.Read(addr.SB))
	assert.False(t, sink.transferActive)
}

func TestFileSinkFixedTiming(t *testing.T) {
	var buf bytes.Buffer
	irqFired := false
	sink := NewFileSink(&buf, func() { irqFired = true }, WithFileSinkFixedTiming())

	sink.Write(addr.SB, 'A')
	sink.Write(addr.SC, 0x81)

	assert.Equal(t, "A", buf.String(), "byte should be written as soon as the transfer starts")
	assert.True(t, sink.transferActive)
	assert.False(t, irqFired)

	sink.Tick(4095)
	assert.False(t, irqFired)

	sink.Tick(1)
	assert.True(t, irqFired)
	assert.False(t, sink.transferActive)
}

func TestFileSinkIgnoresTransferWithoutInternalClock(t *testing.T) {
	var buf bytes.Buffer
	sink := NewFileSink(&buf, func() {})

	sink.Write(addr.SB, 'X')
	sink.Write(addr.SC, 0x80) // start bit set, but external clock selected

	assert.Empty(t, buf.String())
	assert.False(t, sink.transferActive)
}

func TestFileSinkReset(t *testing.T) {
	var buf bytes.Buffer
	sink := NewFileSink(&buf, func() {}, WithFileSinkFixedTiming())

	sink.Write(addr.SB, 'Z')
	sink.Write(addr.SC, 0x81)
	assert.True(t, sink.transferActive)

	sink.Reset()
	assert.False(t, sink.transferActive)
	assert.Equal(t, byte(0), sink.Read(addr.SB))
	assert.Equal(t, byte(0), sink.Read(addr.SC))
}
