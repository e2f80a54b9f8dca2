package video

import (
	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/pgray/ohboy/ohboy/bit"
)

// Mode represents the PPU's current rendering stage.
// These values match the STAT register bits 1-0.
type Mode byte

const (
	// HBlank (Mode 0): horizontal blank period, CPU can access VRAM/OAM
	HBlank Mode = 0
	// VBlank (Mode 1): vertical blank period, CPU can access VRAM/OAM
	VBlank Mode = 1
	// OamSearch (Mode 2): PPU is scanning OAM, CPU cannot access OAM
	OamSearch Mode = 2
	// PixelTransfer (Mode 3): PPU is reading VRAM, CPU cannot access VRAM/OAM
	PixelTransfer Mode = 3
)

const (
	oamSearchCycles     = 80
	pixelTransferCycles = 172
	hblankCycles        = 204
	scanlineCycles      = oamSearchCycles + pixelTransferCycles + hblankCycles
	maxScanline         = 154
)

// LCDC (LCD Control) register bit indices.
// Bit 7 - LCD Display Enable (0=Off, 1=On)
// Bit 6 - Window Tile Map Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 5 - Window Display Enable (0=Off, 1=On)
// Bit 4 - BG & Window Tile Data Select (0=8800-97FF signed, 1=8000-8FFF)
// Bit 3 - BG Tile Map Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 2 - OBJ (Sprite) Size (0=8x8, 1=8x16)
// Bit 1 - OBJ (Sprite) Display Enable (0=Off, 1=On)
// Bit 0 - BG Display (0=Off, 1=On)
type lcdcFlag = uint8

const (
	lcdDisplayEnable       lcdcFlag = 7
	windowTileMapSelect    lcdcFlag = 6
	windowDisplayEnable    lcdcFlag = 5
	bgWindowTileDataSelect lcdcFlag = 4
	bgTileMapSelect        lcdcFlag = 3
	spriteSize             lcdcFlag = 2
	spriteDisplayEnable    lcdcFlag = 1
	bgDisplay              lcdcFlag = 0
)

// STAT (LCD Status) register bit indices.
// Bit 6 - LYC=LY interrupt source enable
// Bit 5 - Mode 2 (OamSearch) interrupt source enable
// Bit 4 - Mode 1 (VBlank) interrupt source enable
// Bit 3 - Mode 0 (HBlank) interrupt source enable
// Bit 2 - LYC=LY comparison flag (read only)
// Bits 1-0 - current mode (read only)
type statFlag = uint8

const (
	statLycIrq    statFlag = 6
	statOamIrq    statFlag = 5
	statVblankIrq statFlag = 4
	statHblankIrq statFlag = 3
)

// PPU owns the video state: LCD registers, VRAM, OAM and the framebuffer.
// It is advanced by the MMU in opcode-sized cycle steps and latches the
// interrupts it raises; the MMU pulls them into IF after every step.
type PPU struct {
	lcdc byte
	// stat holds the four writable interrupt source enable bits (3-6).
	// The comparison flag and mode bits are composed on read.
	stat    byte
	lycFlag bool
	mode    Mode
	scy     byte
	scx     byte
	ly      byte
	lyc     byte
	bgp     byte
	obp0    byte
	obp1    byte
	wy      byte
	wx      byte

	vram  [0x2000]byte
	oam   [0xA0]byte
	dirty bool

	clock       int
	windowLine  int
	framebuffer *FrameBuffer
	// bgPixels tracks the pre-palette background color index of every pixel
	// on the current frame, for sprite background-priority checks.
	bgPixels [FramebufferSize]byte
	priority spritePriorityBuffer

	vblankInterruptFired bool
	lcdInterruptFired    bool
}

// New creates a PPU in the post-boot state: LCD enabled, at the start of the
// first scanline.
func New() *PPU {
	return &PPU{
		lcdc:        0x91,
		bgp:         0xFC,
		mode:        OamSearch,
		framebuffer: NewFrameBuffer(),
	}
}

func (p *PPU) Framebuffer() *FrameBuffer {
	return p.framebuffer
}

// Mode returns the current rendering stage.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the scanline currently being drawn.
func (p *PPU) LY() byte {
	return p.ly
}

// TakeInterrupts returns and clears the interrupt latches.
func (p *PPU) TakeInterrupts() (vblank, lcdStat bool) {
	vblank, lcdStat = p.vblankInterruptFired, p.lcdInterruptFired
	p.vblankInterruptFired = false
	p.lcdInterruptFired = false
	return vblank, lcdStat
}

// TakeDirty returns and clears the VRAM/OAM dirty flag. Front ends use it to
// skip redrawing frames whose video memory never changed.
func (p *PPU) TakeDirty() bool {
	dirty := p.dirty
	p.dirty = false
	return dirty
}

func (p *PPU) lcdcFlagSet(flag lcdcFlag) bool {
	return bit.IsSet(flag, p.lcdc)
}

// Tick advances the PPU state machine by the given number of cycles.
func (p *PPU) Tick(cycles int) {
	if !p.lcdcFlagSet(lcdDisplayEnable) {
		return
	}

	p.clock += cycles

	switch p.mode {
	case OamSearch:
		if p.clock >= oamSearchCycles {
			p.clock -= oamSearchCycles
			// no STAT interrupt source exists for this transition
			p.mode = PixelTransfer
		}
	case PixelTransfer:
		if p.clock >= pixelTransferCycles {
			p.clock -= pixelTransferCycles
			p.mode = HBlank
			if bit.IsSet(statHblankIrq, p.stat) {
				p.lcdInterruptFired = true
			}
		}
	case HBlank:
		if p.clock >= hblankCycles {
			p.clock -= hblankCycles
			p.drawScanline()
			p.setLY(p.ly + 1)
			if p.ly == FramebufferHeight {
				p.mode = VBlank
				p.vblankInterruptFired = true
				if bit.IsSet(statVblankIrq, p.stat) {
					p.lcdInterruptFired = true
				}
			} else {
				p.mode = OamSearch
				if bit.IsSet(statOamIrq, p.stat) {
					p.lcdInterruptFired = true
				}
			}
		}
	case VBlank:
		if p.clock >= scanlineCycles {
			p.clock -= scanlineCycles
			p.setLY(p.ly + 1)
			if p.ly == maxScanline {
				p.setLY(0)
				p.windowLine = 0
				p.mode = OamSearch
				if bit.IsSet(statOamIrq, p.stat) {
					p.lcdInterruptFired = true
				}
			}
		}
	}
}

// checkLYC re-evaluates the LYC=LY comparison. Called on every LY change and
// on every write to LYC.
func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		p.lycFlag = true
		if bit.IsSet(statLycIrq, p.stat) {
			p.lcdInterruptFired = true
		}
	} else {
		p.lycFlag = false
	}
}

func (p *PPU) setLY(line byte) {
	p.ly = line
	p.checkLYC()
}

// ReadVRAM reads a byte from video RAM. The address is a bus address in
// 0x8000-0x9FFF.
func (p *PPU) ReadVRAM(address uint16) byte {
	return p.vram[address-0x8000]
}

func (p *PPU) WriteVRAM(address uint16, value byte) {
	p.vram[address-0x8000] = value
	p.dirty = true
}

// ReadOAM reads a byte from object attribute memory. The address is a bus
// address in 0xFE00-0xFE9F.
func (p *PPU) ReadOAM(address uint16) byte {
	return p.oam[address-addr.OAMStart]
}

func (p *PPU) WriteOAM(address uint16, value byte) {
	p.oam[address-addr.OAMStart] = value
	p.dirty = true
}

// ReadRegister reads one of the LCD registers in 0xFF40-0xFF4B.
func (p *PPU) ReadRegister(address uint16) byte {
	switch address {
	case addr.LCDC:
		return p.lcdc
	case addr.STAT:
		value := 0x80 | p.stat | byte(p.mode)
		if p.lycFlag {
			value = bit.Set(2, value)
		}
		return value
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return p.ly
	case addr.LYC:
		return p.lyc
	case addr.BGP:
		return p.bgp
	case addr.OBP0:
		return p.obp0
	case addr.OBP1:
		return p.obp1
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	default:
		return 0xFF
	}
}

// WriteRegister writes one of the LCD registers in 0xFF40-0xFF4B, applying
// the register-specific side effects.
func (p *PPU) WriteRegister(address uint16, value byte) {
	switch address {
	case addr.LCDC:
		wasEnabled := p.lcdcFlagSet(lcdDisplayEnable)
		enabled := bit.IsSet(lcdDisplayEnable, value)
		p.lcdc = value
		if wasEnabled && !enabled {
			p.setLY(0)
			p.mode = HBlank
			p.clock = 0
			p.windowLine = 0
			p.framebuffer.Fill(White)
		} else if !wasEnabled && enabled {
			p.mode = OamSearch
			p.clock = 0
		}
	case addr.STAT:
		// only the interrupt source enable bits are writable
		p.stat = value & 0x78
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LY:
		p.setLY(value)
	case addr.LYC:
		p.lyc = value
		p.checkLYC()
	case addr.BGP:
		p.bgp = value
	case addr.OBP0:
		p.obp0 = value
	case addr.OBP1:
		p.obp1 = value
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	}
}

// drawScanline renders the line that just finished its HBlank into the
// framebuffer: background, then window, then sprites.
func (p *PPU) drawScanline() {
	if p.lcdcFlagSet(bgDisplay) {
		p.drawBackground()
		if p.lcdcFlagSet(windowDisplayEnable) {
			p.drawWindow()
		}
	} else {
		// background disabled: the line shows palette color 0
		shade := Color(p.bgp & 0x03)
		lineStart := int(p.ly) * FramebufferWidth
		for x := 0; x < FramebufferWidth; x++ {
			p.framebuffer.buffer[lineStart+x] = shade
			p.bgPixels[lineStart+x] = 0
		}
	}

	if p.lcdcFlagSet(spriteDisplayEnable) {
		p.drawSprites()
	}
}

// tileRowAddress resolves the VRAM offset of a tile's row of pixel data,
// honoring the LCDC tile data addressing mode: unsigned from 0x8000 or
// signed from 0x9000.
func (p *PPU) tileRowAddress(tileNo byte, rowOffset int) int {
	if p.lcdcFlagSet(bgWindowTileDataSelect) {
		return int(tileNo)*16 + rowOffset
	}
	return int(addr.TileData2-addr.TileData0) + int(int8(tileNo))*16 + rowOffset
}

func (p *PPU) drawBackground() {
	tileMap := int(addr.TileMap0 - addr.TileData0)
	if p.lcdcFlagSet(bgTileMapSelect) {
		tileMap = int(addr.TileMap1 - addr.TileData0)
	}

	yPos := p.scy + p.ly // wraps at 256
	tileRow := int(yPos/8) * 32
	rowOffset := int(yPos%8) * 2
	lineStart := int(p.ly) * FramebufferWidth

	for px := 0; px < FramebufferWidth; px++ {
		xPos := p.scx + byte(px)
		tileCol := int(xPos / 8)
		tileNo := p.vram[tileMap+tileRow+tileCol]
		tileAddr := p.tileRowAddress(tileNo, rowOffset)

		lo := p.vram[tileAddr]
		hi := p.vram[tileAddr+1]

		pixelBit := 7 - (xPos % 8)
		colorVal := bit.GetBitValue(pixelBit, lo) | bit.GetBitValue(pixelBit, hi)<<1

		p.framebuffer.buffer[lineStart+px] = Color((p.bgp >> (colorVal * 2)) & 0x03)
		p.bgPixels[lineStart+px] = colorVal
	}
}

func (p *PPU) drawWindow() {
	windowX := p.wx - 7 // wraps below 7, which pushes it off screen
	windowY := p.wy
	if windowX > 159 || windowY > 143 || p.ly < windowY {
		return
	}

	tileMap := int(addr.TileMap0 - addr.TileData0)
	if p.lcdcFlagSet(windowTileMapSelect) {
		tileMap = int(addr.TileMap1 - addr.TileData0)
	}

	yPos := byte(p.windowLine)
	tileRow := int(yPos/8) * 32
	rowOffset := int(yPos%8) * 2
	lineStart := int(p.ly) * FramebufferWidth

	for px := int(windowX); px < FramebufferWidth; px++ {
		xPos := byte(px) - windowX
		tileCol := int(xPos / 8)
		tileNo := p.vram[tileMap+tileRow+tileCol]
		tileAddr := p.tileRowAddress(tileNo, rowOffset)

		lo := p.vram[tileAddr]
		hi := p.vram[tileAddr+1]

		pixelBit := 7 - (xPos % 8)
		colorVal := bit.GetBitValue(pixelBit, lo) | bit.GetBitValue(pixelBit, hi)<<1

		p.framebuffer.buffer[lineStart+px] = Color((p.bgp >> (colorVal * 2)) & 0x03)
		p.bgPixels[lineStart+px] = colorVal
	}
	p.windowLine++
}

func (p *PPU) drawSprites() {
	spriteHeight := 8
	if p.lcdcFlagSet(spriteSize) {
		spriteHeight = 16
	}

	line := int(p.ly)

	// OAM selection: scan in address order, keep the first 10 sprites whose
	// Y range overlaps this line. X does not affect selection.
	var selected []int
	for sprite := 0; sprite < 40; sprite++ {
		spriteY := int(p.oam[sprite*4]) - 16
		if spriteY > line || spriteY+spriteHeight <= line {
			continue
		}
		selected = append(selected, sprite)
		if len(selected) >= 10 {
			break
		}
	}

	// ownership pass: lower X wins a pixel, ties go to the lower OAM index
	p.priority.clear()
	for _, sprite := range selected {
		spriteX := int(p.oam[sprite*4+1]) - 8
		for px := 0; px < 8; px++ {
			p.priority.tryClaimPixel(spriteX+px, sprite, spriteX)
		}
	}

	lineStart := line * FramebufferWidth
	for _, sprite := range selected {
		spriteY := int(p.oam[sprite*4]) - 16
		spriteX := int(p.oam[sprite*4+1]) - 8
		tileNo := p.oam[sprite*4+2]
		flags := p.oam[sprite*4+3]

		if spriteHeight == 16 {
			tileNo &= 0xFE
		}

		palette := p.obp0
		if bit.IsSet(4, flags) {
			palette = p.obp1
		}
		flipX := bit.IsSet(5, flags)
		flipY := bit.IsSet(6, flags)
		behindBG := bit.IsSet(7, flags)

		pixelY := line - spriteY
		if flipY {
			pixelY = spriteHeight - 1 - pixelY
		}

		// sprites always use unsigned addressing from 0x8000; in 8x16 mode
		// rows 8-15 fall through into the next tile
		tileAddr := int(tileNo)*16 + pixelY*2
		lo := p.vram[tileAddr]
		hi := p.vram[tileAddr+1]

		for px := 0; px < 8; px++ {
			screenX := spriteX + px
			if screenX < 0 || screenX >= FramebufferWidth {
				continue
			}
			if p.priority.getOwner(screenX) != sprite {
				continue
			}

			pixelBit := uint8(7 - px)
			if flipX {
				pixelBit = uint8(px)
			}
			colorVal := bit.GetBitValue(pixelBit, lo) | bit.GetBitValue(pixelBit, hi)<<1
			if colorVal == 0 {
				// color 0 is transparent for sprites
				continue
			}
			if behindBG && p.bgPixels[lineStart+screenX] != 0 {
				continue
			}

			p.framebuffer.buffer[lineStart+screenX] = Color((palette >> (colorVal * 2)) & 0x03)
		}
	}
}
