package cpu

import "fmt"

// Tick executes exactly one instruction (or interrupt service) and returns
// the number of T-cycles it took. It's the entry point the orchestrator
// drives once per loop iteration; it's an alias for Step kept for callers
// that think of the CPU as "ticking" alongside the PPU and timer.
func (c *CPU) Tick() int {
	return c.Step()
}

// GetPC returns the program counter.
func (c *CPU) GetPC() uint16 {
	return c.pc
}

// SetPC sets the program counter, used by the debugger to force execution
// to resume at a given address.
func (c *CPU) SetPC(value uint16) {
	c.pc = value
}

// GetSP returns the stack pointer.
func (c *CPU) GetSP() uint16 {
	return c.sp
}

// SetSP sets the stack pointer.
func (c *CPU) SetSP(value uint16) {
	c.sp = value
}

// GetA returns the accumulator.
func (c *CPU) GetA() uint8 { return c.a }

// GetF returns the flags register; its low nibble is always zero.
func (c *CPU) GetF() uint8 { return c.f }

// GetB returns register B.
func (c *CPU) GetB() uint8 { return c.b }

// GetC returns register C.
func (c *CPU) GetC() uint8 { return c.c }

// GetD returns register D.
func (c *CPU) GetD() uint8 { return c.d }

// GetE returns register E.
func (c *CPU) GetE() uint8 { return c.e }

// GetH returns register H.
func (c *CPU) GetH() uint8 { return c.h }

// GetL returns register L.
func (c *CPU) GetL() uint8 { return c.l }

// GetAF returns the AF register pair.
func (c *CPU) GetAF() uint16 { return c.getAF() }

// GetBC returns the BC register pair.
func (c *CPU) GetBC() uint16 { return c.getBC() }

// GetDE returns the DE register pair.
func (c *CPU) GetDE() uint16 { return c.getDE() }

// GetHL returns the HL register pair.
func (c *CPU) GetHL() uint16 { return c.getHL() }

// GetIME reports whether the interrupt master enable flip-flop is set.
func (c *CPU) GetIME() bool { return c.ime }

// IsHalted reports whether the CPU is in the Halted execution mode.
func (c *CPU) IsHalted() bool { return c.halted }

// IsStopped reports whether the CPU is in the Stopped execution mode.
func (c *CPU) IsStopped() bool { return c.stopped }

// GetFlagString renders the Z/N/H/C flags as a 4-character string, using an
// uppercase letter when the flag is set and a dash otherwise (e.g. "Z-HC").
func (c *CPU) GetFlagString() string {
	flags := [4]byte{'-', '-', '-', '-'}
	if c.isSetFlag(zeroFlag) {
		flags[0] = 'Z'
	}
	if c.isSetFlag(subFlag) {
		flags[1] = 'N'
	}
	if c.isSetFlag(halfCarryFlag) {
		flags[2] = 'H'
	}
	if c.isSetFlag(carryFlag) {
		flags[3] = 'C'
	}
	return fmt.Sprintf("%c%c%c%c", flags[0], flags[1], flags[2], flags[3])
}
