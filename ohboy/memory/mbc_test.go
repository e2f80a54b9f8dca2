package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mbc1WithBanks builds an MBC1 over a ROM where every byte holds its bank
// number, with the given amount of cartridge RAM.
func mbc1WithBanks(t *testing.T, bankCount int, ramSizeCode uint8) *MBC1 {
	t.Helper()

	rom := buildROM(bankCount*0x4000, 0x03, 0x00, ramSizeCode, "")
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	// restore the header bytes the fill overwrote
	rom[cartridgeTypeAddress] = 0x03
	rom[romSizeAddress] = 0x00
	rom[ramSizeAddress] = ramSizeCode

	cart, err := NewCartridgeWithData(rom)
	assert.NoError(t, err)
	return NewMBC1(cart)
}

func TestRomOnly(t *testing.T) {
	cart := NewCartridge()
	cart.rom[0x0000] = 0x12
	cart.rom[0x7FFF] = 0x34

	mbc := NewRomOnly(cart)

	assert.Equal(t, uint8(0x12), mbc.ReadROM(0x0000))
	assert.Equal(t, uint8(0x34), mbc.ReadROM(0x7FFF))

	// writes to ROM are ignored
	mbc.WriteROM(0x0000, 0xFF)
	assert.Equal(t, uint8(0x12), mbc.ReadROM(0x0000))

	mbc.WriteRAM(0x0000, 0xAB)
	assert.Equal(t, uint8(0xAB), mbc.ReadRAM(0x0000))
}

func TestMBC1_romBanking(t *testing.T) {
	t.Run("fixed window is bank 0", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 4, 0x00)

		assert.Equal(t, uint8(0), mbc.ReadROM(0x0000))
		assert.Equal(t, uint8(0), mbc.ReadROM(0x3FFF))
	})

	t.Run("switchable window defaults to bank 1", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 4, 0x00)

		assert.Equal(t, uint8(1), mbc.ReadROM(0x4000))
		assert.Equal(t, uint8(1), mbc.ReadROM(0x7FFF))
	})

	t.Run("bank select", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 4, 0x00)

		mbc.WriteROM(0x2000, 2)
		assert.Equal(t, uint8(2), mbc.ReadROM(0x4000))

		mbc.WriteROM(0x2000, 3)
		assert.Equal(t, uint8(3), mbc.ReadROM(0x4000))
	})

	t.Run("writing bank 0 selects bank 1", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 4, 0x00)

		mbc.WriteROM(0x2000, 2)
		mbc.WriteROM(0x2000, 0)

		assert.Equal(t, uint8(1), mbc.romBank)
		assert.Equal(t, uint8(1), mbc.ReadROM(0x4000))
	})

	t.Run("bank wraps when beyond the image", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 4, 0x00)

		mbc.WriteROM(0x2000, 6) // only 4 banks present
		assert.Equal(t, uint8(2), mbc.ReadROM(0x4000))
	})
}

func TestMBC1_ram(t *testing.T) {
	t.Run("disabled RAM reads 0xFF and drops writes", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 2, 0x03)

		mbc.WriteRAM(0x0000, 0x42)
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(0x0000))
	})

	t.Run("enable with low nibble 0xA", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 2, 0x03)

		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0x0000, 0x42)
		assert.Equal(t, uint8(0x42), mbc.ReadRAM(0x0000))

		mbc.WriteROM(0x0000, 0x1A)
		assert.True(t, mbc.ramEnabled, "any value with low nibble 0xA enables")

		mbc.WriteROM(0x0000, 0x00)
		assert.False(t, mbc.ramEnabled)
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(0x0000))
	})

	t.Run("RAM banking in advanced mode", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 2, 0x03) // 32KB RAM, 4 banks

		mbc.WriteROM(0x0000, 0x0A) // enable RAM
		mbc.WriteROM(0x6000, 0x01) // advanced mode

		mbc.WriteROM(0x4000, 0x00)
		mbc.WriteRAM(0x0000, 0x11)
		mbc.WriteROM(0x4000, 0x02)
		mbc.WriteRAM(0x0000, 0x22)

		mbc.WriteROM(0x4000, 0x00)
		assert.Equal(t, uint8(0x11), mbc.ReadRAM(0x0000))
		mbc.WriteROM(0x4000, 0x02)
		assert.Equal(t, uint8(0x22), mbc.ReadRAM(0x0000))
	})

	t.Run("simple mode pins RAM bank 0", func(t *testing.T) {
		mbc := mbc1WithBanks(t, 2, 0x03)

		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteROM(0x4000, 0x02) // selects bank 2, but mode is simple
		mbc.WriteRAM(0x0000, 0x33)

		mbc.WriteROM(0x4000, 0x00)
		assert.Equal(t, uint8(0x33), mbc.ReadRAM(0x0000))
	})
}
