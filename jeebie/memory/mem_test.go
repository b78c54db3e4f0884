package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProhibitedRegionReadsOpenBus(t *testing.T) {
	mmu := New()

	for _, addr := range []uint16{0xFEA0, 0xFEB3, 0xFECF, 0xFEFF} {
		want := byte((addr>>4)&0xF)<<4 | byte((addr>>4)&0xF)
		assert.Equal(t, want, mmu.Read(addr), "address 0x%04X", addr)
	}
}

func TestProhibitedRegionWritesAreDropped(t *testing.T) {
	mmu := New()

	before := mmu.Read(0xFEA0)
	mmu.Write(0xFEA0, 0x42)
	assert.Equal(t, before, mmu.Read(0xFEA0))
}

func TestWorkRAMRoundTrip(t *testing.T) {
	mmu := New()

	for i := uint16(0); i < 0x2000; i++ {
		mmu.Write(0xC000+i, byte(i))
	}
	for i := uint16(0); i < 0x2000; i++ {
		assert.Equal(t, byte(i), mmu.Read(0xC000+i))
	}
}

func TestHighRAMRoundTrip(t *testing.T) {
	mmu := New()

	for i := uint16(0); i < 0x7F; i++ {
		mmu.Write(0xFF80+i, byte(i*3))
	}
	for i := uint16(0); i < 0x7F; i++ {
		assert.Equal(t, byte(i*3), mmu.Read(0xFF80+i))
	}
}

func TestOAMDMATransferCopiesWorkRAM(t *testing.T) {
	mmu := New()

	for i := uint16(0); i < 160; i++ {
		mmu.Write(0xC000+i, byte(i))
	}

	mmu.Write(0xFF46, 0xC0)
	mmu.Tick(640)

	for i := uint16(0); i < 160; i++ {
		assert.Equal(t, byte(i), mmu.ReadRaw(0xFE00+i), "OAM byte %d", i)
	}
}
