package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ardenmill/dmgcore/jeebie/memory"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name           string
		memorySetup    map[uint16]uint8
		pc             uint16
		expectedOpcode uint16
	}{
		{
			name:           "NOP",
			memorySetup:    map[uint16]uint8{0xC000: 0x00},
			pc:             0xC000,
			expectedOpcode: 0x00,
		},
		{
			name:           "INC B",
			memorySetup:    map[uint16]uint8{0xC000: 0x04},
			pc:             0xC000,
			expectedOpcode: 0x04,
		},
		{
			name: "CB BIT 0,B",
			memorySetup: map[uint16]uint8{
				0xC000: 0xCB,
				0xC001: 0x40,
			},
			pc:             0xC000,
			expectedOpcode: 0xCB40,
		},
		{
			name: "CB SET 7,A",
			memorySetup: map[uint16]uint8{
				0xC000: 0xCB,
				0xC001: 0xFF,
			},
			pc:             0xC000,
			expectedOpcode: 0xCBFF,
		},
		{
			name: "LD B,0xCB is not a CB prefix",
			memorySetup: map[uint16]uint8{
				0xC000: 0x06,
				0xC001: 0xCB,
			},
			pc:             0xC000,
			expectedOpcode: 0x06,
		},
		{
			name:           "HALT",
			memorySetup:    map[uint16]uint8{0xC000: 0x76},
			pc:             0xC000,
			expectedOpcode: 0x76,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmu := memory.New()
			for addr, value := range tt.memorySetup {
				mmu.Write(addr, value)
			}

			c := New(mmu)
			c.pc = tt.pc

			c.Step()

			assert.Equal(t, tt.expectedOpcode, c.currentOpcode)
		})
	}
}

func TestDecodeTableIsFullyPopulated(t *testing.T) {
	for op := 0; op < 256; op++ {
		assert.NotNil(t, opcodeTable[op], "opcode 0x%02X has no handler", op)
		assert.NotNil(t, cbOpcodeTable[op], "CB opcode 0x%02X has no handler", op)
	}
}
