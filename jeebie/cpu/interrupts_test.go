package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ardenmill/dmgcore/jeebie/addr"
	"github.com/ardenmill/dmgcore/jeebie/memory"
)

func TestInterruptHandling(t *testing.T) {
	t.Run("interrupts disabled by default", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false

		mmu.Write(addr.IF, 0x01)
		mmu.Write(addr.IE, 0x01)

		_, serviced := c.serviceInterrupt()
		assert.False(t, serviced)
		assert.Equal(t, uint16(0x100), c.pc)
	})

	t.Run("EI enables interrupts after the following instruction", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)

		opcode0xFB(c)
		assert.False(t, c.ime)
		assert.True(t, c.imePending)

		// NOP, to let the EI delay elapse as Step() would.
		opcode0x00(c)
		if c.imePending {
			c.imePending = false
			c.ime = true
		}

		assert.True(t, c.ime)
		assert.False(t, c.imePending)
	})

	t.Run("DI disables interrupts immediately", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = true

		opcode0xF3(c)
		assert.False(t, c.ime)
		assert.False(t, c.imePending)
	})

	t.Run("interrupt priority order favors VBlank over the rest", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = true

		mmu.Write(addr.IF, 0x1F)
		mmu.Write(addr.IE, 0x1F)

		c.serviceInterrupt()

		assert.Equal(t, uint16(0x40), c.pc)
		assert.Equal(t, uint8(0x1E), mmu.Read(addr.IF)&0x1F, "VBlank bit should be cleared, the rest left pending")
	})

	t.Run("RETI enables interrupts and returns", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false
		c.sp = 0xFFFE
		c.pc = 0x200

		c.pushStack(0x150)

		opcode0xD9(c)

		assert.True(t, c.ime)
		assert.Equal(t, uint16(0x150), c.pc)
	})
}

func TestHALTBehavior(t *testing.T) {
	t.Run("HALT with IME=1 and pending interrupt services it on the next Step", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = true

		opcode0x76(c)
		assert.True(t, c.halted)

		mmu.Write(addr.IF, 0x01)
		mmu.Write(addr.IE, 0x01)

		c.Step()

		assert.False(t, c.halted)
		assert.Equal(t, uint16(0x40), c.pc)
	})

	t.Run("HALT with IME=0 and pending interrupt wakes without servicing", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false
		c.pc = 0x100

		opcode0x76(c)
		assert.True(t, c.halted)

		mmu.Write(addr.IF, 0x01)
		mmu.Write(addr.IE, 0x01)

		c.Step()

		assert.False(t, c.halted)
	})

	t.Run("HALT with IME=0 and no pending interrupt stays halted", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false

		opcode0x76(c)
		assert.True(t, c.halted)

		mmu.Write(addr.IF, 0x00)
		mmu.Write(addr.IE, 0x01)

		c.Step()

		assert.True(t, c.halted)
	})
}

func TestSTOPBehavior(t *testing.T) {
	t.Run("STOP with a pending joypad interrupt wakes on the next Step", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false

		opcode0x10(c)
		assert.True(t, c.stopped)

		mmu.Write(addr.IF, 0x10)

		c.Step()

		assert.False(t, c.stopped)
	})

	t.Run("STOP with a pending non-joypad interrupt stays stopped", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false

		opcode0x10(c)
		assert.True(t, c.stopped)

		mmu.Write(addr.IF, 0x01)

		c.Step()

		assert.True(t, c.stopped)
	})

	t.Run("STOP with no pending interrupt stays stopped", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.ime = false

		opcode0x10(c)
		assert.True(t, c.stopped)

		c.Step()

		assert.True(t, c.stopped)
	})
}

func TestIllegalOpcodeIsFatal(t *testing.T) {
	illegalOpcodes := []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

	for _, op := range illegalOpcodes {
		t.Run(fmt.Sprintf("0x%02X", op), func(t *testing.T) {
			mmu := memory.New()
			c := New(mmu)
			c.pc = 0xC000
			mmu.Write(0xC000, op)

			assert.Nil(t, c.FatalError())

			c.Step()

			require.Error(t, c.FatalError())
			assert.Contains(t, c.FatalError().Error(), fmt.Sprintf("0x%02X", op))
		})
	}

	t.Run("stays fatal and stops fetching on further Step calls", func(t *testing.T) {
		mmu := memory.New()
		c := New(mmu)
		c.pc = 0xC000
		mmu.Write(0xC000, 0xD3)

		c.Step()
		err := c.FatalError()
		require.Error(t, err)

		pcAfterCrash := c.pc
		cycles := c.Step()

		assert.Equal(t, 0, cycles)
		assert.Equal(t, pcAfterCrash, c.pc)
		assert.Equal(t, err, c.FatalError())
	})
}

func TestInterruptDispatchTakes20Cycles(t *testing.T) {
	mmu := memory.New()
	c := New(mmu)
	c.ime = true

	mmu.Write(addr.IF, 0x01)
	mmu.Write(addr.IE, 0x01)

	cycles := c.Step()

	assert.Equal(t, 20, cycles)
}
