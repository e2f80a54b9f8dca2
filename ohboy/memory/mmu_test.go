package memory

import (
	"testing"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/stretchr/testify/assert"
)

func TestMMU_readWriteRoundTrip(t *testing.T) {
	testCases := []struct {
		desc    string
		address uint16
	}{
		{desc: "VRAM start", address: 0x8000},
		{desc: "VRAM end", address: 0x9FFF},
		{desc: "WRAM start", address: 0xC000},
		{desc: "WRAM end", address: 0xDFFF},
		{desc: "OAM", address: 0xFE00},
		{desc: "unclaimed IO port", address: 0xFF7F},
		{desc: "HRAM start", address: 0xFF80},
		{desc: "HRAM end", address: 0xFFFE},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			mmu := New()
			mmu.Write(tC.address, 0x5A)
			assert.Equal(t, uint8(0x5A), mmu.Read(tC.address))
		})
	}
}

func TestMMU_echoRAMAliasesWRAM(t *testing.T) {
	mmu := New()

	mmu.Write(0xC123, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(0xE123))

	mmu.Write(0xE123, 0x24)
	assert.Equal(t, uint8(0x24), mmu.Read(0xC123))
}

func TestMMU_unusedRegion(t *testing.T) {
	mmu := New()

	mmu.Write(0xFEA0, 0x42)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEA0))
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEFF))
}

func TestMMU_wordAccessIsLittleEndian(t *testing.T) {
	mmu := New()

	mmu.WriteWord(0xC000, 0xABCD)
	assert.Equal(t, uint8(0xCD), mmu.Read(0xC000))
	assert.Equal(t, uint8(0xAB), mmu.Read(0xC001))
	assert.Equal(t, uint16(0xABCD), mmu.ReadWord(0xC000))
}

func TestMMU_divWriteResets(t *testing.T) {
	mmu := New()
	mmu.Tick(1000)

	mmu.Write(addr.DIV, 0x77)
	assert.Equal(t, uint8(0), mmu.Read(addr.DIV))
}

func TestMMU_interruptFlags(t *testing.T) {
	mmu := New()

	mmu.Write(addr.IF, 0x00)
	assert.Equal(t, uint8(0xE0), mmu.Read(addr.IF), "upper IF bits always read as 1")

	mmu.RequestInterrupt(addr.TimerInterrupt)
	assert.Equal(t, uint8(0xE4), mmu.Read(addr.IF))

	mmu.Write(addr.IE, 0x04)
	assert.Equal(t, uint8(0x04), mmu.PendingInterrupts())

	mmu.ClearInterrupt(addr.TimerInterrupt)
	assert.Equal(t, uint8(0x00), mmu.PendingInterrupts())
}

func TestMMU_tickMergesTimerInterrupt(t *testing.T) {
	mmu := New()
	mmu.Write(addr.TAC, 0x05) // enabled, 16 cycle period
	mmu.Write(addr.TIMA, 0xFF)
	mmu.Write(addr.IF, 0x00)

	mmu.Tick(16)

	assert.NotZero(t, mmu.Read(addr.IF)&uint8(addr.TimerInterrupt))
}

// Scenario: DMA from 0xC200 fills OAM with the source bytes.
func TestMMU_oamDMA(t *testing.T) {
	mmu := New()
	for i := uint16(0); i < 0xA0; i++ {
		mmu.Write(0xC200+i, uint8(i))
	}

	mmu.Write(addr.DMA, 0xC2)

	for i := uint16(0); i < 0xA0; i++ {
		assert.Equal(t, uint8(i), mmu.Read(addr.OAMStart+i))
	}
	assert.Equal(t, uint8(0xC2), mmu.Read(addr.DMA), "DMA register reads back the last write")
}

func TestMMU_joypad(t *testing.T) {
	mmu := New()

	t.Run("nothing selected reads all high", func(t *testing.T) {
		mmu.Write(addr.P1, 0x30)
		assert.Equal(t, uint8(0xFF), mmu.Read(addr.P1))
	})

	t.Run("pressed key pulls its bit low", func(t *testing.T) {
		mmu.HandleKeyPress(JoypadRight)
		mmu.Write(addr.P1, 0x20) // select d-pad
		assert.Equal(t, uint8(0xEE), mmu.Read(addr.P1))

		mmu.HandleKeyRelease(JoypadRight)
		assert.Equal(t, uint8(0xEF), mmu.Read(addr.P1))
	})

	t.Run("press requests the joypad interrupt", func(t *testing.T) {
		mmu.Write(addr.IF, 0x00)
		mmu.HandleKeyPress(JoypadStart)
		assert.NotZero(t, mmu.Read(addr.IF)&uint8(addr.JoypadInterrupt))
	})
}

func TestMMU_romRoutesThroughMBC(t *testing.T) {
	rom := buildROM(4*0x4000, 0x01, 0x01, 0x00, "")
	for i := 0x1000; i < len(rom); i++ {
		rom[i] = uint8(i / 0x4000)
	}

	cart, err := NewCartridgeWithData(rom)
	assert.NoError(t, err)
	mmu, err := NewWithCartridge(cart)
	assert.NoError(t, err)

	assert.Equal(t, uint8(1), mmu.Read(0x4000))

	// bank switch through a ROM write
	mmu.Write(0x2000, 0x02)
	assert.Equal(t, uint8(2), mmu.Read(0x4000))

	// writing 0 selects bank 1 again
	mmu.Write(0x2000, 0x00)
	assert.Equal(t, uint8(1), mmu.Read(0x4000))
}

func TestMMU_lcdRegistersRouteToPPU(t *testing.T) {
	mmu := New()

	mmu.Write(addr.SCY, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(addr.SCY))
	assert.Equal(t, uint8(0x42), mmu.PPU().ReadRegister(addr.SCY))

	mmu.Write(addr.BGP, 0xE4)
	assert.Equal(t, uint8(0xE4), mmu.PPU().ReadRegister(addr.BGP))
}
