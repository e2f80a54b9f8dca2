package video

import (
	"testing"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/stretchr/testify/assert"
)

// tickScanline advances a full 456-cycle scanline in mode-sized steps.
func tickScanline(p *PPU) {
	p.Tick(oamSearchCycles)
	p.Tick(pixelTransferCycles)
	p.Tick(hblankCycles)
}

func TestPPU_modeDurations(t *testing.T) {
	p := New()

	assert.Equal(t, OamSearch, p.Mode())
	assert.Equal(t, uint8(0), p.LY())

	p.Tick(oamSearchCycles - 1)
	assert.Equal(t, OamSearch, p.Mode())
	p.Tick(1)
	assert.Equal(t, PixelTransfer, p.Mode())

	p.Tick(pixelTransferCycles)
	assert.Equal(t, HBlank, p.Mode())

	p.Tick(hblankCycles)
	assert.Equal(t, OamSearch, p.Mode())
	assert.Equal(t, uint8(1), p.LY())
}

func TestPPU_frameTiming(t *testing.T) {
	p := New()

	// 144 visible scanlines of 80+172+204 cycles
	for line := 0; line < 144; line++ {
		assert.Equal(t, uint8(line), p.LY())
		tickScanline(p)
	}
	assert.Equal(t, VBlank, p.Mode())
	assert.Equal(t, uint8(144), p.LY())

	// VBlank lasts 10 scanlines of 456 cycles
	for line := 0; line < 10; line++ {
		p.Tick(scanlineCycles)
	}
	assert.Equal(t, OamSearch, p.Mode())
	assert.Equal(t, uint8(0), p.LY())
}

func TestPPU_vblankInterrupt(t *testing.T) {
	p := New()

	for line := 0; line < 143; line++ {
		tickScanline(p)
	}
	p.TakeInterrupts() // discard anything raised so far

	tickScanline(p)

	vblank, _ := p.TakeInterrupts()
	assert.True(t, vblank)
}

func TestPPU_statModeInterrupts(t *testing.T) {
	t.Run("hblank source", func(t *testing.T) {
		p := New()
		p.WriteRegister(addr.STAT, 1<<statHblankIrq)

		p.Tick(oamSearchCycles)
		p.TakeInterrupts()
		p.Tick(pixelTransferCycles)

		_, lcdStat := p.TakeInterrupts()
		assert.True(t, lcdStat)
	})

	t.Run("oam search transition has no source", func(t *testing.T) {
		p := New()
		p.WriteRegister(addr.STAT, 0x78) // every source enabled
		p.TakeInterrupts()

		// OamSearch -> PixelTransfer
		p.Tick(oamSearchCycles)

		_, lcdStat := p.TakeInterrupts()
		assert.False(t, lcdStat)
	})
}

// Scenario: with the LYC source enabled, reaching LY=LYC raises LCD STAT.
func TestPPU_lycInterrupt(t *testing.T) {
	p := New()
	p.WriteRegister(addr.LYC, 0x42)
	p.WriteRegister(addr.STAT, 1<<statLycIrq)

	for line := 0; line < 0x42; line++ {
		p.TakeInterrupts()
		tickScanline(p)
	}

	assert.Equal(t, uint8(0x42), p.LY())
	_, lcdStat := p.TakeInterrupts()
	assert.True(t, lcdStat)
	assert.NotZero(t, p.ReadRegister(addr.STAT)&0x04, "comparison flag set")
}

func TestPPU_lycCompareOnWrite(t *testing.T) {
	p := New()
	p.WriteRegister(addr.STAT, 1<<statLycIrq)
	p.TakeInterrupts()

	// LY is 0; writing LYC=0 must re-evaluate immediately
	p.WriteRegister(addr.LYC, 0x00)

	_, lcdStat := p.TakeInterrupts()
	assert.True(t, lcdStat)
	assert.NotZero(t, p.ReadRegister(addr.STAT)&0x04)

	p.WriteRegister(addr.LYC, 0x10)
	assert.Zero(t, p.ReadRegister(addr.STAT)&0x04)
}

func TestPPU_statReadComposition(t *testing.T) {
	p := New()
	p.WriteRegister(addr.STAT, 0xFF)

	value := p.ReadRegister(addr.STAT)
	assert.Equal(t, uint8(0x80), value&0x80, "bit 7 always reads 1")
	assert.Equal(t, uint8(0x78), value&0x78, "source bits kept")
	assert.Equal(t, uint8(OamSearch), value&0x03, "mode in bits 1-0")
}

func TestPPU_lcdDisable(t *testing.T) {
	p := New()

	// run into the middle of a frame, then turn the LCD off
	for line := 0; line < 20; line++ {
		tickScanline(p)
	}
	p.WriteRegister(addr.LCDC, 0x11)

	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, HBlank, p.Mode())
	for _, px := range p.Framebuffer().ToSlice() {
		if px != White {
			t.Fatal("framebuffer must be all white after LCD off")
		}
	}

	// time does not advance while disabled
	p.Tick(scanlineCycles * 3)
	assert.Equal(t, uint8(0), p.LY())

	// re-enable: rendering restarts in OamSearch
	p.WriteRegister(addr.LCDC, 0x91)
	assert.Equal(t, OamSearch, p.Mode())
}

// fillTile writes a tile whose pixels all have the given 2-bit color index.
func fillTile(p *PPU, tileAddr uint16, colorVal byte) {
	lo := byte(0x00)
	hi := byte(0x00)
	if colorVal&0x01 != 0 {
		lo = 0xFF
	}
	if colorVal&0x02 != 0 {
		hi = 0xFF
	}
	for row := uint16(0); row < 8; row++ {
		p.WriteVRAM(tileAddr+row*2, lo)
		p.WriteVRAM(tileAddr+row*2+1, hi)
	}
}

func TestPPU_backgroundRendering(t *testing.T) {
	p := New()
	p.WriteRegister(addr.BGP, 0xE4) // identity palette: 3,2,1,0

	// tile 0 (at 0x8000, unsigned mode) entirely color 3; the tile map
	// defaults to zero, so every background tile is tile 0
	fillTile(p, addr.TileData0, 3)

	tickScanline(p)

	for x := 0; x < FramebufferWidth; x++ {
		assert.Equal(t, Black, p.Framebuffer().GetPixel(x, 0))
	}
}

func TestPPU_backgroundPaletteLookup(t *testing.T) {
	p := New()
	p.WriteRegister(addr.BGP, 0x1B) // 00 01 10 11: inverts the indices

	fillTile(p, addr.TileData0, 0)

	tickScanline(p)

	assert.Equal(t, Black, p.Framebuffer().GetPixel(0, 0), "index 0 maps through BGP")
}

func TestPPU_signedTileAddressing(t *testing.T) {
	p := New()
	p.WriteRegister(addr.LCDC, 0x81) // bit 4 clear: signed tile data from 0x9000
	p.WriteRegister(addr.BGP, 0xE4)

	// tile 0 lives at 0x9000 in signed mode
	fillTile(p, addr.TileData2, 2)
	// tile -128 lives at 0x8800; select it for the first map column
	fillTile(p, addr.TileData1, 1)
	p.WriteVRAM(addr.TileMap0, 0x80)

	tickScanline(p)

	assert.Equal(t, LightGray, p.Framebuffer().GetPixel(0, 0), "tile -128 from 0x8800")
	assert.Equal(t, DarkGray, p.Framebuffer().GetPixel(8, 0), "tile 0 from 0x9000")
}

func TestPPU_scrollWrapsAround(t *testing.T) {
	p := New()
	p.WriteRegister(addr.BGP, 0xE4)

	// map row 0 tile 0 -> color 3, the rest of the map stays tile 0
	fillTile(p, addr.TileData0, 3)
	p.WriteRegister(addr.SCX, 0xF8) // -8: the first tile shown is map column 31

	tickScanline(p)

	assert.Equal(t, Black, p.Framebuffer().GetPixel(0, 0))
}

func TestPPU_windowRendering(t *testing.T) {
	p := New()
	// LCD on, window on with tile map 1, bg on with tile map 0, unsigned tiles
	p.WriteRegister(addr.LCDC, 0xF1)
	p.WriteRegister(addr.BGP, 0xE4)

	fillTile(p, addr.TileData0, 1)    // background tile
	fillTile(p, addr.TileData0+16, 3) // window tile
	for col := uint16(0); col < 32; col++ {
		p.WriteVRAM(addr.TileMap1+col, 0x01)
	}

	p.WriteRegister(addr.WY, 0)
	p.WriteRegister(addr.WX, 7+80) // window covers the right half

	tickScanline(p)

	assert.Equal(t, LightGray, p.Framebuffer().GetPixel(0, 0), "left half is background")
	assert.Equal(t, Black, p.Framebuffer().GetPixel(80, 0), "right half is window")
	assert.Equal(t, Black, p.Framebuffer().GetPixel(159, 0))
}

func TestPPU_spriteRendering(t *testing.T) {
	newSpritePPU := func() *PPU {
		p := New()
		p.WriteRegister(addr.LCDC, 0x93) // LCD on, bg on, sprites on, 8x8
		p.WriteRegister(addr.BGP, 0xE4)
		p.WriteRegister(addr.OBP0, 0xE4)
		p.WriteRegister(addr.OBP1, 0xE4)
		fillTile(p, addr.TileData0+16, 1) // sprite tile 1: all color 1
		return p
	}

	writeSprite := func(p *PPU, index int, y, x, tile, flags byte) {
		base := addr.OAMStart + uint16(index*4)
		p.WriteOAM(base, y)
		p.WriteOAM(base+1, x)
		p.WriteOAM(base+2, tile)
		p.WriteOAM(base+3, flags)
	}

	t.Run("draws over the background", func(t *testing.T) {
		p := newSpritePPU()
		writeSprite(p, 0, 16, 8, 1, 0x00) // top-left corner of the screen

		tickScanline(p)

		for x := 0; x < 8; x++ {
			assert.Equal(t, LightGray, p.Framebuffer().GetPixel(x, 0))
		}
		assert.Equal(t, White, p.Framebuffer().GetPixel(8, 0))
	})

	t.Run("transparent color is never drawn", func(t *testing.T) {
		p := newSpritePPU()
		fillTile(p, addr.TileData0+32, 0) // tile 2: all color 0
		writeSprite(p, 0, 16, 8, 2, 0x00)

		tickScanline(p)

		assert.Equal(t, White, p.Framebuffer().GetPixel(0, 0))
	})

	t.Run("background priority flag defers to nonzero background", func(t *testing.T) {
		p := newSpritePPU()
		fillTile(p, addr.TileData0, 2) // background all color 2
		writeSprite(p, 0, 16, 8, 1, 0x80)

		tickScanline(p)

		assert.Equal(t, DarkGray, p.Framebuffer().GetPixel(0, 0), "sprite hidden behind background")
	})

	t.Run("smaller X wins overlapping pixels", func(t *testing.T) {
		p := newSpritePPU()
		fillTile(p, addr.TileData0+32, 3) // tile 2: all color 3
		writeSprite(p, 0, 16, 12, 2, 0x00) // OAM 0 at x=4, color 3
		writeSprite(p, 1, 16, 8, 1, 0x00)  // OAM 1 at x=0, color 1

		tickScanline(p)

		// sprite 1 has the smaller X: it owns the overlap at x=4..7
		assert.Equal(t, LightGray, p.Framebuffer().GetPixel(4, 0))
		// sprite 0 still draws where sprite 1 ends
		assert.Equal(t, Black, p.Framebuffer().GetPixel(8, 0))
	})

	t.Run("at most 10 sprites per scanline", func(t *testing.T) {
		p := newSpritePPU()
		// 11 sprites on line 0, each 8 pixels apart
		for i := 0; i < 11; i++ {
			writeSprite(p, i, 16, byte(8+i*8), 1, 0x00)
		}

		tickScanline(p)

		assert.Equal(t, LightGray, p.Framebuffer().GetPixel(9*8, 0), "10th sprite drawn")
		assert.Equal(t, White, p.Framebuffer().GetPixel(10*8, 0), "11th sprite dropped")
	})

	t.Run("x flip mirrors the tile", func(t *testing.T) {
		p := newSpritePPU()
		// tile 3: only the leftmost pixel set (bit 7), color 1
		for row := uint16(0); row < 8; row++ {
			p.WriteVRAM(addr.TileData0+48+row*2, 0x80)
			p.WriteVRAM(addr.TileData0+48+row*2+1, 0x00)
		}
		writeSprite(p, 0, 16, 8, 3, 0x20)

		tickScanline(p)

		assert.Equal(t, White, p.Framebuffer().GetPixel(0, 0))
		assert.Equal(t, LightGray, p.Framebuffer().GetPixel(7, 0))
	})
}

func TestPPU_dirtyFlag(t *testing.T) {
	p := New()
	p.TakeDirty()

	assert.False(t, p.TakeDirty())
	p.WriteVRAM(0x8000, 0x01)
	assert.True(t, p.TakeDirty())
}
