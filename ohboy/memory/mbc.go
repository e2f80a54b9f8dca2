package memory

import (
	"fmt"
	"log/slog"
)

// MBC is the memory bank controller interface. ROM addresses are bus
// addresses in 0x0000-0x7FFF; RAM addresses are relative to the start of the
// external RAM window (0xA000).
//
// WriteROM programs the controller's banking registers, it never changes ROM
// contents.
type MBC interface {
	ReadROM(address uint16) uint8
	WriteROM(address uint16, value uint8)
	ReadRAM(address uint16) uint8
	WriteRAM(address uint16, value uint8)
}

// NewMBC builds the controller matching the cartridge's header type.
// RomOnly and MBC1 variants are supported; everything else is rejected at
// setup time.
func NewMBC(cart *Cartridge) (MBC, error) {
	switch cart.cartType {
	case RomOnlyType:
		return NewRomOnly(cart), nil
	case MBC1Type, MBC1RamType, MBC1RamBatteryType:
		return NewMBC1(cart), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMBC, cart.cartType)
	}
}

// RomOnly represents cartridges with no banking hardware: 32KB of ROM mapped
// directly at 0x0000-0x7FFF, RAM (if any) directly indexed.
type RomOnly struct {
	cart *Cartridge
}

func NewRomOnly(cart *Cartridge) *RomOnly {
	return &RomOnly{cart: cart}
}

func (m *RomOnly) ReadROM(address uint16) uint8 {
	return m.cart.rom[address]
}

func (m *RomOnly) WriteROM(address uint16, value uint8) {
	slog.Warn("Ignoring write to ROM",
		"addr", fmt.Sprintf("0x%04X", address),
		"value", fmt.Sprintf("0x%02X", value))
}

func (m *RomOnly) ReadRAM(address uint16) uint8 {
	return m.cart.ram[address]
}

func (m *RomOnly) WriteRAM(address uint16, value uint8) {
	m.cart.ram[address] = value
}

// bankingMode selects how MBC1 interprets its 2-bit secondary register.
type bankingMode uint8

const (
	// simpleBanking: 0x0000-0x3FFF is always ROM bank 0 and only RAM bank 0
	// is reachable.
	simpleBanking bankingMode = 0
	// advancedBanking: the secondary register banks RAM, and the fixed ROM
	// window shows bank upper<<5.
	advancedBanking bankingMode = 1
)

// MBC1 maps ROM in 16KB banks and up to 32KB of banked RAM. The switchable
// window uses only the 5-bit bank number, so it reaches banks 1-31 (512KB of
// ROM); the secondary register's upper bits never reach it. Bank 0 is fixed at 0x0000-0x3FFF (in simple mode); the bank at
// 0x4000-0x7FFF is switchable and can never be bank 0.
type MBC1 struct {
	cart       *Cartridge
	ramEnabled bool
	// romBank is the 5-bit bank mapped into 0x4000-0x7FFF. Writing 0 stores 1.
	romBank uint8
	// ramBank is the 2-bit secondary register. In advanced mode it selects
	// the RAM bank and the fixed window's bank (ramBank<<5); simple mode
	// ignores it.
	ramBank uint8
	mode    bankingMode
}

func NewMBC1(cart *Cartridge) *MBC1 {
	return &MBC1{
		cart:    cart,
		romBank: 1,
	}
}

func (m *MBC1) readROMBank(bank uint8, offset uint16) uint8 {
	index := int(bank)*0x4000 + int(offset)
	if len(m.cart.rom) == 0 {
		return 0xFF
	}
	// banks beyond the image wrap around, mirroring smaller ROMs
	return m.cart.rom[index%len(m.cart.rom)]
}

func (m *MBC1) ramBankOffset() int {
	if m.mode == advancedBanking {
		return int(m.ramBank) * 0x2000
	}
	return 0
}

func (m *MBC1) ReadROM(address uint16) uint8 {
	switch {
	case address <= 0x3FFF:
		if m.mode == advancedBanking {
			return m.readROMBank(m.ramBank<<5, address)
		}
		return m.cart.rom[address]
	default:
		return m.readROMBank(m.romBank, address-0x4000)
	}
}

func (m *MBC1) WriteROM(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case address <= 0x3FFF:
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case address <= 0x5FFF:
		m.ramBank = value & 0x03
	case address <= 0x7FFF:
		m.mode = bankingMode(value & 0x01)
	default:
		panic(fmt.Sprintf("MBC1: write outside banking ranges: 0x%04X <- 0x%02X", address, value))
	}
}

func (m *MBC1) ReadRAM(address uint16) uint8 {
	if !m.ramEnabled {
		slog.Warn("Reading cartridge RAM while disabled", "addr", fmt.Sprintf("0x%04X", address))
		return 0xFF
	}
	index := m.ramBankOffset() + int(address)
	if index >= len(m.cart.ram) {
		return 0xFF
	}
	return m.cart.ram[index]
}

func (m *MBC1) WriteRAM(address uint16, value uint8) {
	if !m.ramEnabled {
		slog.Warn("Dropping write to cartridge RAM while disabled",
			"addr", fmt.Sprintf("0x%04X", address),
			"value", fmt.Sprintf("0x%02X", value))
		return
	}
	index := m.ramBankOffset() + int(address)
	if index < len(m.cart.ram) {
		m.cart.ram[index] = value
	}
}
