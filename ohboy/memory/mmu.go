package memory

import (
	"fmt"
	"log/slog"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/pgray/ohboy/ohboy/bit"
	"github.com/pgray/ohboy/ohboy/video"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

// MMU multiplexes the cartridge, video memory, work RAM, I/O registers and
// high RAM behind the 16-bit address space. It owns the timer, PPU, joypad
// and interrupt registers, and advances them in Tick.
type MMU struct {
	cart       *Cartridge
	mbc        MBC
	interrupts InterruptState
	timer      Timer
	joypad     Joypad
	ppu        *video.PPU

	wram [0x2000]byte
	hram [0x7F]byte
	// io is scratch storage for the ports no component claims
	io [0x80]byte

	regionMap [256]memRegion
}

// New creates a memory unit with an empty cartridge, equivalent to powering
// on the console with nothing inserted.
func New() *MMU {
	mmu := &MMU{
		cart:       NewCartridge(),
		interrupts: NewInterruptState(),
		timer:      NewTimer(),
		joypad:     NewJoypad(),
		ppu:        video.New(),
	}
	mmu.mbc = NewRomOnly(mmu.cart)
	mmu.initRegionMap()
	return mmu
}

// NewWithCartridge creates a memory unit with the provided cartridge loaded.
// Fails if the cartridge needs an unsupported bank controller.
func NewWithCartridge(cart *Cartridge) (*MMU, error) {
	mbc, err := NewMBC(cart)
	if err != nil {
		return nil, err
	}

	mmu := New()
	mmu.cart = cart
	mmu.mbc = mbc
	return mmu, nil
}

func (m *MMU) initRegionMap() {
	for page := 0x00; page <= 0xFF; page++ {
		switch {
		case page <= 0x7F:
			m.regionMap[page] = regionROM
		case page <= 0x9F:
			m.regionMap[page] = regionVRAM
		case page <= 0xBF:
			m.regionMap[page] = regionExtRAM
		case page <= 0xDF:
			m.regionMap[page] = regionWRAM
		case page <= 0xFD:
			m.regionMap[page] = regionEcho
		case page == 0xFE:
			m.regionMap[page] = regionOAM
		default:
			m.regionMap[page] = regionIO
		}
	}
}

// Cartridge returns the loaded cartridge.
func (m *MMU) Cartridge() *Cartridge {
	return m.cart
}

// PPU returns the owned picture processing unit.
func (m *MMU) PPU() *video.PPU {
	return m.ppu
}

// Tick advances the timer and PPU by the given cycle count, then merges the
// interrupts they raised into IF.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	m.ppu.Tick(cycles)

	if m.timer.interruptFired {
		m.timer.interruptFired = false
		m.interrupts.Request(addr.TimerInterrupt)
	}

	vblank, lcdStat := m.ppu.TakeInterrupts()
	if vblank {
		m.interrupts.Request(addr.VBlankInterrupt)
	}
	if lcdStat {
		m.interrupts.Request(addr.LCDStatInterrupt)
	}
}

// RequestInterrupt sets the IF bit of the chosen interrupt.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.interrupts.Request(interrupt)
}

// ClearInterrupt resets the IF bit of the chosen interrupt, as done by the
// CPU when it services one.
func (m *MMU) ClearInterrupt(interrupt addr.Interrupt) {
	m.interrupts.Clear(interrupt)
}

// PendingInterrupts returns the set of interrupts both requested and enabled.
func (m *MMU) PendingInterrupts() uint8 {
	return m.interrupts.Pending()
}

// HandleKeyPress latches a joypad key down and requests the Joypad interrupt
// on the press transition.
func (m *MMU) HandleKeyPress(key JoypadKey) {
	if m.joypad.Press(key) {
		m.interrupts.Request(addr.JoypadInterrupt)
	}
}

// HandleKeyRelease latches a joypad key up.
func (m *MMU) HandleKeyRelease(key JoypadKey) {
	m.joypad.Release(key)
}

// ReadBit checks a single bit of the byte at the given address.
func (m *MMU) ReadBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.Read(address))
}

func (m *MMU) Read(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM:
		return m.mbc.ReadROM(address)
	case regionVRAM:
		return m.ppu.ReadVRAM(address)
	case regionExtRAM:
		return m.mbc.ReadRAM(address - 0xA000)
	case regionWRAM:
		return m.wram[address-0xC000]
	case regionEcho:
		slog.Warn("Prohibited read from echo RAM", "addr", fmt.Sprintf("0x%04X", address))
		return m.wram[address-0xE000]
	case regionOAM:
		if address <= addr.OAMEnd {
			return m.ppu.ReadOAM(address)
		}
		slog.Warn("Prohibited read from unused memory", "addr", fmt.Sprintf("0x%04X", address))
		return 0xFF
	default:
		if address == addr.IE {
			return m.interrupts.ReadEnable()
		}
		if address >= 0xFF80 {
			return m.hram[address-0xFF80]
		}
		return m.readIO(address)
	}
}

func (m *MMU) Write(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM:
		m.mbc.WriteROM(address, value)
	case regionVRAM:
		m.ppu.WriteVRAM(address, value)
	case regionExtRAM:
		m.mbc.WriteRAM(address-0xA000, value)
	case regionWRAM:
		m.wram[address-0xC000] = value
	case regionEcho:
		slog.Warn("Prohibited write to echo RAM",
			"addr", fmt.Sprintf("0x%04X", address),
			"value", fmt.Sprintf("0x%02X", value))
		m.wram[address-0xE000] = value
	case regionOAM:
		if address <= addr.OAMEnd {
			m.ppu.WriteOAM(address, value)
			return
		}
		slog.Warn("Dropping write to unused memory",
			"addr", fmt.Sprintf("0x%04X", address),
			"value", fmt.Sprintf("0x%02X", value))
	default:
		if address == addr.IE {
			m.interrupts.WriteEnable(value)
			return
		}
		if address >= 0xFF80 {
			m.hram[address-0xFF80] = value
			return
		}
		m.writeIO(address, value)
	}
}

func (m *MMU) readIO(address uint16) byte {
	switch {
	case address == addr.P1:
		return m.joypad.Read()
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address == addr.IF:
		return m.interrupts.ReadFlags()
	case address == addr.DMA:
		return m.io[address-0xFF00]
	case address >= addr.LCDC && address <= addr.WX:
		return m.ppu.ReadRegister(address)
	default:
		return m.io[address-0xFF00]
	}
}

func (m *MMU) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		m.joypad.Write(value)
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address == addr.IF:
		m.interrupts.WriteFlags(value)
	case address == addr.DMA:
		m.runOAMDMA(value)
		m.io[address-0xFF00] = value
	case address >= addr.LCDC && address <= addr.WX:
		m.ppu.WriteRegister(address, value)
	default:
		m.io[address-0xFF00] = value
	}
}

// runOAMDMA copies 160 bytes from value<<8 into OAM through the normal bus.
// The transfer is modeled as instantaneous.
func (m *MMU) runOAMDMA(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.ppu.WriteOAM(addr.OAMStart+i, m.Read(source+i))
	}
}

// ReadWord reads a little-endian word: low byte at address, high at address+1.
func (m *MMU) ReadWord(address uint16) uint16 {
	return bit.Combine(m.Read(address+1), m.Read(address))
}

// WriteWord writes a little-endian word: low byte at address, high at address+1.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, bit.Low(value))
	m.Write(address+1, bit.High(value))
}
