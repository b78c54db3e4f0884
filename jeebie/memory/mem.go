package memory

import (
	"fmt"
	"log/slog"

	"github.com/ardenmill/dmgcore/jeebie/addr"
	"github.com/ardenmill/dmgcore/jeebie/audio"
	"github.com/ardenmill/dmgcore/jeebie/bit"
	"github.com/ardenmill/dmgcore/jeebie/serial"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionUnused
	regionIO
	regionHRAM
)

// JoypadKey represents a key on the Gameboy joypad
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// SerialPort is the minimal interface for a serial device connected to SB/SC.
// Implementations MUST only accept reads/writes to addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value byte)
	Read(address uint16) byte
	Tick(cycles int)
	Reset()
}

// dmaCyclesPerByte is how many T-cycles OAM DMA spends per byte copied:
// 160 bytes transferred over 640 T-cycles total.
const dmaCyclesPerByte = 4

// MMU allows access to all memory mapped I/O and data/registers
type MMU struct {
	cart      *Cartridge
	mbc       MBC
	memory    []byte
	APU       *audio.APU
	regionMap [256]memRegion

	joypadButtons uint8 // Actual state of buttons A/B/Start/Select, mapped to low bits of P1
	joypadDpad    uint8 // Actual state of d-pad directions, mapped to low bits of P1

	serial SerialPort
	timer  Timer

	dmaActive   bool
	dmaSource   uint16
	dmaIndex    uint16
	dmaAccum    int
	dmaLastByte byte

	// lastBusValue is the byte most recently read or written on the bus.
	// While OAM DMA is active, CPU accesses outside high RAM observe this
	// value instead of the region they addressed (§3's DMA-arbitration
	// invariant) rather than updating it.
	lastBusValue byte

	breakpoints *Breakpoints
}

// inHighRAM reports whether address is in the HRAM+IE window (0xFF80-0xFFFF),
// the one region the CPU can still reach while OAM DMA is in flight.
func inHighRAM(address uint16) bool {
	return address >= 0xFF80
}

// GetCartridge returns the currently loaded cartridge, for inspection by
// the debugger's `header` command.
func (m *MMU) GetCartridge() *Cartridge {
	return m.cart
}

// AttachBreakpoints wires an address-watch set into the bus. Reads and
// writes are checked against it; pass nil to detach.
func (m *MMU) AttachBreakpoints(b *Breakpoints) {
	m.breakpoints = b
}

// AttachSerialPort replaces the serial device wired to SB/SC, e.g. to swap
// the default logging sink for one that also persists bytes to a file.
func (m *MMU) AttachSerialPort(s SerialPort) {
	m.serial = s
}

// New creates a new memory unity with default data, i.e. nothing cartridge loaded.
// Equivalent to turning on a Gameboy without a cartridge in.
func New() *MMU {
	mmu := &MMU{
		memory:        make([]byte, 0x10000),
		cart:          NewCartridge(),
		APU:           audio.New(),
		joypadButtons: 0x0F,
		joypadDpad:    0x0F,
	}
	mmu.serial = serial.NewLogSink(func() { mmu.RequestInterrupt(addr.SerialInterrupt) })
	mmu.timer.TimerInterruptHandler = func() { mmu.RequestInterrupt(addr.TimerInterrupt) }
	initRegionMap(mmu)
	return mmu
}

// Tick advances any i/o that needs it, if any.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	if m.serial != nil {
		m.serial.Tick(cycles)
	}
	m.tickDMA(cycles)
}

// tickDMA paces the OAM DMA transfer kicked off by a write to addr.DMA,
// copying one byte every 4 T-cycles until all 160 bytes have moved.
func (m *MMU) tickDMA(cycles int) {
	if !m.dmaActive {
		return
	}
	m.dmaAccum += cycles
	for m.dmaAccum >= dmaCyclesPerByte && m.dmaActive {
		m.dmaAccum -= dmaCyclesPerByte
		m.dmaLastByte = m.ReadRaw(m.dmaSource + m.dmaIndex)
		m.memory[0xFE00+m.dmaIndex] = m.dmaLastByte
		m.lastBusValue = m.dmaLastByte
		m.dmaIndex++
		if m.dmaIndex >= 160 {
			m.dmaActive = false
		}
	}
}

// SetTimerSeed initializes the internal timer divider seed and DIV register.
func (m *MMU) SetTimerSeed(seed uint16) {
	m.timer.SetSeed(seed)
}

// NewWithCartridge creates a new memory unit with the provided cartridge data loaded.
// Equivalent to turning on a Gameboy with a cartridge in.
func NewWithCartridge(cart *Cartridge) *MMU {
	mmu := New()
	mmu.cart = cart

	switch cart.mbcType {
	case NoMBCType:
		mmu.mbc = NewNoMBC(cart.data)
	case MBC1Type:
		mmu.mbc = NewMBC1(cart.data, cart.hasBattery, cart.ramBankCount)
	case MBC1MultiType:
		mmu.mbc = NewMBC1(cart.data, cart.hasBattery, cart.ramBankCount) // FIXME: add support for multicart
	case MBC2Type:
		mmu.mbc = NewMBC2(cart.data)
	case MBC3Type:
		mmu.mbc = NewMBC3(cart.data, cart.hasRTC, cart.ramBankCount)
	case MBC5Type:
		mmu.mbc = NewMBC5(cart.data, cart.hasRumble, cart.ramBankCount)
	case MBCUnknownType:
		panic("unsupported MBC type: unknown")
	default:
		panic(fmt.Sprintf("unsupported MBC type: %d", cart.mbcType))
	}

	return mmu
}

func initRegionMap(m *MMU) {
	// ROM: 0x0000-0x7FFF
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	// VRAM: 0x8000-0x9FFF
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionVRAM
	}
	// External RAM: 0xA000-0xBFFF
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionExtRAM
	}
	// Work RAM: 0xC000-0xDFFF
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	// Echo RAM: 0xE000-0xFDFF
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	// OAM: 0xFE00-0xFE9F, Unused: 0xFEA0-0xFEFF
	m.regionMap[0xFE] = regionOAM
	// IO + HRAM: 0xFF00-0xFFFF
	m.regionMap[0xFF] = regionIO
}

// RequestInterrupt sets the interrupt flag (IF register) of the chosen interrupt to 1.
// RequestInterrupt ORs the given interrupt's bit into IF. This is the
// hardware raising an interrupt line, not a CPU bus access, so it must
// never be blocked by the DMA-window lockout or disturb the CPU's "last
// bus value" latch.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	interruptFlags := m.ReadRaw(addr.IF)

	var bitPos uint8
	switch interrupt {
	case addr.VBlankInterrupt:
		bitPos = 0
	case addr.LCDSTATInterrupt:
		bitPos = 1
	case addr.TimerInterrupt:
		bitPos = 2
	case addr.SerialInterrupt:
		bitPos = 3
	case addr.JoypadInterrupt:
		bitPos = 4
	default:
		panic(fmt.Sprintf("Unknown interrupt: 0x%02X", uint8(interrupt)))
	}

	newFlags := bit.Set(bitPos, interruptFlags)

	m.WriteRaw(addr.IF, newFlags)
}

func (m *MMU) ReadBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.Read(address))
}

// ReadRawBit is ReadBit's internal counterpart: used by the PPU and the
// orchestrator to inspect hardware registers (STAT IRQ-enable bits, LCDC's
// display-enable bit) without tripping the CPU's breakpoint or DMA-window
// bus semantics.
func (m *MMU) ReadRawBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.ReadRaw(address))
}

// currentPPUMode returns the 2-bit mode currently latched in STAT's low
// bits (0=HBlank, 1=VBlank, 2=OAM scan, 3=VRAM transfer).
func (m *MMU) currentPPUMode() uint8 {
	return m.memory[addr.STAT] & 0x03
}

// Read performs a CPU-facing bus read: it honors breakpoints, the
// PPU-mode lockouts that make VRAM/OAM inaccessible to the CPU while the
// PPU owns them, and the open-bus behavior while a DMA transfer is in
// flight. Every CPU read latches its result as the "last bus value".
func (m *MMU) Read(address uint16) byte {
	m.breakpoints.Check(address, AccessRead)
	if m.dmaActive && !inHighRAM(address) {
		return m.lastBusValue
	}
	v := m.dispatchRead(address, true)
	m.lastBusValue = v
	return v
}

// ReadRaw performs an internal read of the bus on behalf of the PPU, the
// DMA engine's own source fetch, or a debugger/disassembler inspecting
// memory: it bypasses the CPU's PPU-mode and DMA lockouts, breakpoint
// tracking, and does not disturb the "last bus value" latch CPU reads
// observe, since none of these callers are the CPU contending for the
// external bus.
func (m *MMU) ReadRaw(address uint16) byte {
	return m.dispatchRead(address, false)
}

// openBusByte is what the prohibited/unmapped region returns: the second
// nibble of the address duplicated into both nibbles of the byte.
func openBusByte(address uint16) byte {
	n := byte((address >> 4) & 0xF)
	return n<<4 | n
}

func (m *MMU) dispatchRead(address uint16, enforceLockout bool) byte {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if m.mbc == nil {
			slog.Warn("Reading from ROM/external RAM with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return m.mbc.Read(address)
	case regionVRAM:
		if enforceLockout && m.currentPPUMode() == 3 {
			return 0xFF
		}
		return m.memory[address]
	case regionWRAM:
		return m.memory[address]
	case regionEcho:
		if address <= 0xFDFF {
			return m.memory[address-0x2000]
		}
		return m.memory[address-0x2000]
	case regionOAM:
		if address <= 0xFE9F {
			if enforceLockout {
				mode := m.currentPPUMode()
				if mode == 2 || mode == 3 {
					return 0xFF
				}
			}
			return m.memory[address]
		}
		// Prohibited area 0xFEA0-0xFEFF: reads return the open-bus byte
		// formed by duplicating bits 4-7 of the address.
		return openBusByte(address)
	case regionIO:
		if address == addr.SB || address == addr.SC {
			return m.serial.Read(address)
		}
		if address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC {
			return m.timer.Read(address)
		}
		if address >= 0xFF10 && address <= 0xFF3F {
			return m.APU.ReadRegister(address)
		}
		// Just in case, we always read the upper 3 bits of IF as 1.
		// They're not used, but have caused me some headaches when checking for
		// when the halt bug triggers (IF != 0).
		if address == addr.IF {
			return m.memory[address] | 0xE0
		}
		if address >= 0xFF80 {
			// HRAM
			return m.memory[address]
		}
		// Other IO registers
		return m.memory[address]
	default:
		panic(fmt.Sprintf("Attempted read at unmapped address: 0x%X", address))
	}
}

// Write performs a CPU-facing bus write: it honors breakpoints and the
// DMA-window lockout, and latches the written value as the "last bus
// value". Internal writes made on the PPU's own behalf (STAT/LY
// bookkeeping) go through WriteRaw instead.
func (m *MMU) Write(address uint16, value byte) {
	m.breakpoints.Check(address, AccessWrite)

	if m.dmaActive && !inHighRAM(address) && address != addr.DMA {
		return
	}

	if address == addr.LY && !m.lcdEnabled() {
		// Writes to LY from the CPU are ignored while the LCD is disabled;
		// the PPU's own WriteRaw to LY still goes through untouched.
		return
	}

	m.lastBusValue = value
	m.dispatchWrite(address, value)
}

// WriteRaw performs an internal write on behalf of the PPU or the DMA
// engine: it bypasses breakpoints, the DMA lockout, and does not disturb
// the "last bus value" latch.
func (m *MMU) WriteRaw(address uint16, value byte) {
	m.dispatchWrite(address, value)
}

// lcdEnabled reports LCDC bit 7, the LCD/PPU master enable.
func (m *MMU) lcdEnabled() bool {
	return bit.IsSet(7, m.ReadRaw(addr.LCDC))
}

func (m *MMU) dispatchWrite(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM:
		if m.mbc == nil {
			slog.Warn("Writing to ROM with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		m.mbc.Write(address, value)
	case regionVRAM:
		m.memory[address] = value
	case regionExtRAM:
		if m.mbc == nil {
			slog.Warn("Writing to external RAM with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		m.mbc.Write(address, value)
	case regionWRAM:
		m.memory[address] = value
	case regionEcho:
		if address <= 0xFDFF {
			m.memory[address-0x2000] = value
		}
	case regionOAM:
		if address <= 0xFE9F {
			m.memory[address] = value
		}
		// Writes to the prohibited area 0xFEA0-0xFEFF are dropped.
	case regionIO:
		if address == addr.P1 {
			m.writeJoypad(value)
			return
		}
		if address == addr.SB || address == addr.SC {
			m.serial.Write(address, value)
			return
		}
		if address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC {
			m.timer.Write(address, value)
			return
		}
		if address >= 0xFF10 && address <= 0xFF3F {
			m.APU.WriteRegister(address, value)
			return
		}
		if address == addr.IF {
			// This goddamn register has its upper 3 bits always set as 1...
			// Beware if you're trying to match halt bug behavior.
			m.memory[address] = value | 0xE0
			return
		}
		if address == addr.DMA {
			m.dmaActive = true
			m.dmaSource = uint16(value) << 8
			m.dmaIndex = 0
			m.dmaAccum = 0
			m.memory[address] = value
			return
		}
		if address >= 0xFF80 {
			// HRAM
			m.memory[address] = value
			return
		}
		// Other IO registers
		m.memory[address] = value
	default:
		panic(fmt.Sprintf("Attempted write at unmapped address: 0x%X", address))
	}
}

// updateJoypadRegister sets the joypad register (P1) according to selection bits
// and hardware (buttons) status.
//
// In real hw, this register is actually just a selector (bits 4-5) that control
// to which set of buttons the low bits (0-3) are mapped to.
//
// The mapping:
//   - if bit 4 is clear, bits 0-3 are mapped to the 4 d-pad directions
//   - if bit 5 is clear, bits 0-3 are mapped to A, B, Start, Select
//   - if both are clear, hw does an AND of both button sets
//   - if neither is clear, return 0x0F (high impedence state)
//
// This function is called whenever:
//   - there is a write to the P1 register (only set bits 4-5)
//   - a button is pressed or released (tracked separately)
//
// Note that 1 -> button released, 0 -> button pressed.
// Bits 6-7 are unused, they always read as 1 on real hardware.
func (m *MMU) updateJoypadRegister() {
	p1 := m.memory[addr.P1]
	result := uint8(0b11000000) // Bits 6-7 are always read as 1
	result |= p1 & 0b00110000   // Keep selection bits 4-5

	// A button group is selected if the corresponding bit is 0
	selectDpad := !bit.IsSet(4, p1)
	selectButtons := !bit.IsSet(5, p1)

	switch {
	case selectButtons && !selectDpad:
		result |= m.joypadButtons & 0x0F
	case selectDpad && !selectButtons:
		result |= m.joypadDpad & 0x0F
	case selectButtons && selectDpad:
		result |= m.joypadButtons & m.joypadDpad & 0x0F
	default:
		// no selection
		result |= 0x0F
	}

	m.memory[addr.P1] = result
}

func (m *MMU) writeJoypad(value uint8) {
	// Only bits 4-5 are writable (selection bits)
	m.memory[addr.P1] = value & 0b00110000
	m.updateJoypadRegister()
}

func (m *MMU) HandleKeyPress(key JoypadKey) {
	oldButtons := m.joypadButtons
	oldDpad := m.joypadDpad

	switch key {
	case JoypadRight:
		m.joypadDpad = bit.Reset(0, m.joypadDpad)
	case JoypadLeft:
		m.joypadDpad = bit.Reset(1, m.joypadDpad)
	case JoypadUp:
		m.joypadDpad = bit.Reset(2, m.joypadDpad)
	case JoypadDown:
		m.joypadDpad = bit.Reset(3, m.joypadDpad)
	case JoypadA:
		m.joypadButtons = bit.Reset(0, m.joypadButtons)
	case JoypadB:
		m.joypadButtons = bit.Reset(1, m.joypadButtons)
	case JoypadSelect:
		m.joypadButtons = bit.Reset(2, m.joypadButtons)
	case JoypadStart:
		m.joypadButtons = bit.Reset(3, m.joypadButtons)
	}

	buttonTransitions := oldButtons & ^m.joypadButtons
	dpadTransitions := oldDpad & ^m.joypadDpad
	if buttonTransitions|dpadTransitions != 0 {
		m.RequestInterrupt(addr.JoypadInterrupt)
	}

	m.updateJoypadRegister()
}

func (m *MMU) HandleKeyRelease(key JoypadKey) {
	switch key {
	case JoypadRight:
		m.joypadDpad = bit.Set(0, m.joypadDpad)
	case JoypadLeft:
		m.joypadDpad = bit.Set(1, m.joypadDpad)
	case JoypadUp:
		m.joypadDpad = bit.Set(2, m.joypadDpad)
	case JoypadDown:
		m.joypadDpad = bit.Set(3, m.joypadDpad)
	case JoypadA:
		m.joypadButtons = bit.Set(0, m.joypadButtons)
	case JoypadB:
		m.joypadButtons = bit.Set(1, m.joypadButtons)
	case JoypadSelect:
		m.joypadButtons = bit.Set(2, m.joypadButtons)
	case JoypadStart:
		m.joypadButtons = bit.Set(3, m.joypadButtons)
	}

	m.updateJoypadRegister()
}
