package cpu

import (
	"fmt"

	"github.com/ardenmill/dmgcore/jeebie/addr"
	"github.com/ardenmill/dmgcore/jeebie/memory"
)

// CPU holds the full architectural state of the LR35902 core: the eight
// 8-bit registers (A,F,B,C,D,E,H,L, addressed individually and paired as
// AF/BC/DE/HL), the stack pointer, program counter, interrupt master enable
// flip-flop and halt/stop latches.
type CPU struct {
	memory *memory.MMU

	a, f, b, c, d, e, h, l uint8
	sp, pc                 uint16

	ime        bool
	imePending bool // EI enables interrupts after the *next* instruction, not immediately
	halted     bool
	stopped    bool

	currentOpcode uint16

	// fatalErr is set once an illegal opcode is executed. Recovery is only
	// by reset; Step keeps returning immediately once this is non-nil.
	fatalErr error

	// breakpoints, when non-nil, is consulted on every memory access so a
	// Debugger can pause execution; the CPU itself never allocates one.
	breakpoints *memory.Breakpoints
}

// New creates a CPU wired to the given bus, in its post-boot-ROM power-up
// state (matching the documented DMG register values after the boot ROM
// hands off to the cartridge at 0x0100).
func New(mmu *memory.MMU) *CPU {
	c := &CPU{memory: mmu}
	c.a, c.f = 0x01, 0xB0
	c.b, c.c = 0x00, 0x13
	c.d, c.e = 0x00, 0xD8
	c.h, c.l = 0x01, 0x4D
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.ime = false
	return c
}

// AttachBreakpoints wires a breakpoint registry consulted on bus accesses
// made directly by the CPU (operand fetches, stack pushes/pops).
func (c *CPU) AttachBreakpoints(b *memory.Breakpoints) {
	c.breakpoints = b
}

func (c *CPU) readImmediate() uint8 {
	value := c.memory.Read(c.pc)
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return (uint16(high) << 8) | uint16(low)
}

// Step executes exactly one instruction (servicing a pending interrupt
// first, if any) and returns the number of T-cycles (4 per M-cycle) it took.
// Once an illegal opcode has been executed, Step stops fetching and just
// returns 0; check FatalError after every call.
func (c *CPU) Step() int {
	if c.fatalErr != nil {
		return 0
	}

	if cycles, serviced := c.serviceInterrupt(); serviced {
		return cycles
	}

	if c.stopped {
		// Stopped wakes only on the joypad interrupt, and unlike HALT it
		// wakes on the request itself rather than an IE&IF match.
		if c.memory.ReadRaw(addr.IF)&0x10 != 0 {
			c.stopped = false
		} else {
			return 4
		}
	}

	if c.halted {
		if c.pendingInterrupts() != 0 {
			c.halted = false
		} else {
			return 4
		}
	}

	pendingEI := c.imePending
	c.imePending = false

	opcode := uint16(c.readImmediate())
	c.currentOpcode = opcode
	cycles := decode(opcode)(c)

	if pendingEI {
		c.ime = true
	}

	return cycles
}

// pendingInterrupts reads IE/IF directly: interrupt dispatch is the CPU's
// own control logic, not a bus access driven by a fetched instruction, so
// it must see the real registers even while OAM DMA has the rest of the
// bus locked out for ordinary CPU reads.
func (c *CPU) pendingInterrupts() uint8 {
	ie := c.memory.ReadRaw(addr.IE)
	iflag := c.memory.ReadRaw(addr.IF)
	return ie & iflag & 0x1F
}

// serviceInterrupt handles the highest-priority pending, enabled interrupt.
// Servicing takes 20 cycles (5 M-cycles): 2 internal, 2 for the PUSH of PC,
// 1 to load the vector into PC. It also wakes the CPU up from HALT even
// when IME is disabled (the interrupt itself is only dispatched when IME is
// set).
func (c *CPU) serviceInterrupt() (int, bool) {
	pending := c.pendingInterrupts()
	if pending != 0 {
		c.halted = false
	}

	if !c.ime || pending == 0 {
		return 0, false
	}

	var bitPos uint8
	var vector uint16
	switch {
	case pending&0x01 != 0:
		bitPos, vector = 0, 0x0040 // VBlank
	case pending&0x02 != 0:
		bitPos, vector = 1, 0x0048 // LCD STAT
	case pending&0x04 != 0:
		bitPos, vector = 2, 0x0050 // Timer
	case pending&0x08 != 0:
		bitPos, vector = 3, 0x0058 // Serial
	case pending&0x10 != 0:
		bitPos, vector = 4, 0x0060 // Joypad
	}

	c.ime = false
	iflag := c.memory.ReadRaw(addr.IF)
	c.memory.WriteRaw(addr.IF, iflag&^(1<<bitPos))

	c.pushStack(c.pc)
	c.pc = vector

	return 20, true
}

// FatalError returns the error that halted the core after an illegal
// opcode was executed, or nil if the core is still running normally.
func (c *CPU) FatalError() error {
	return c.fatalErr
}

// raiseIllegalOpcode marks the core as crashed. Called by the handlers for
// the eleven byte patterns with no defined instruction (D3, DB, DD, E3, E4,
// EB, EC, ED, F4, FC, FD). Recovery is only by reset.
func (c *CPU) raiseIllegalOpcode(opcode uint8) {
	if c.fatalErr == nil {
		c.fatalErr = fmt.Errorf("illegal opcode 0x%02X at 0x%04X", opcode, c.pc-1)
	}
}
