package memory

import (
	"errors"
	"fmt"
	"strings"
)

const (
	titleStartAddress    = 0x0134
	titleEndAddress      = 0x0143
	cartridgeTypeAddress = 0x0147
	romSizeAddress       = 0x0148
	ramSizeAddress       = 0x0149
)

// ErrBadHeader is returned when a cartridge header carries a value this
// emulator does not recognise.
var ErrBadHeader = errors.New("bad cartridge header")

// ErrUnsupportedMBC is returned when the cartridge requires a memory bank
// controller that is not implemented.
var ErrUnsupportedMBC = errors.New("unsupported MBC type")

// CartridgeType is the MBC chip identifier from header byte 0x0147.
type CartridgeType uint8

const (
	RomOnlyType        CartridgeType = 0x00
	MBC1Type           CartridgeType = 0x01
	MBC1RamType        CartridgeType = 0x02
	MBC1RamBatteryType CartridgeType = 0x03
	MBC2Type           CartridgeType = 0x05
	MBC2BatteryType    CartridgeType = 0x06
	MBC3Type           CartridgeType = 0x11
	MBC3RamType        CartridgeType = 0x12
	MBC3RamBatteryType CartridgeType = 0x13
	MBC5Type           CartridgeType = 0x19
	MBC5RamType        CartridgeType = 0x1A
	MBC5RamBatteryType CartridgeType = 0x1B
)

func (t CartridgeType) String() string {
	switch t {
	case RomOnlyType:
		return "ROM ONLY"
	case MBC1Type:
		return "MBC1"
	case MBC1RamType:
		return "MBC1+RAM"
	case MBC1RamBatteryType:
		return "MBC1+RAM+BATTERY"
	case MBC2Type:
		return "MBC2"
	case MBC2BatteryType:
		return "MBC2+BATTERY"
	case MBC3Type:
		return "MBC3"
	case MBC3RamType:
		return "MBC3+RAM"
	case MBC3RamBatteryType:
		return "MBC3+RAM+BATTERY"
	case MBC5Type:
		return "MBC5"
	case MBC5RamType:
		return "MBC5+RAM"
	case MBC5RamBatteryType:
		return "MBC5+RAM+BATTERY"
	default:
		return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
	}
}

func cartridgeTypeFromHeader(value uint8) (CartridgeType, error) {
	switch t := CartridgeType(value); t {
	case RomOnlyType, MBC1Type, MBC1RamType, MBC1RamBatteryType,
		MBC2Type, MBC2BatteryType,
		MBC3Type, MBC3RamType, MBC3RamBatteryType,
		MBC5Type, MBC5RamType, MBC5RamBatteryType:
		return t, nil
	default:
		return 0, fmt.Errorf("%w: cartridge type 0x%02X", ErrBadHeader, value)
	}
}

// romSizeFromHeader maps header byte 0x0148 to the total ROM size in bytes.
// Codes 0x00-0x08 are 32KB shifted left by the code value.
func romSizeFromHeader(value uint8) (int, error) {
	if value > 0x08 {
		return 0, fmt.Errorf("%w: ROM size code 0x%02X", ErrBadHeader, value)
	}
	return 0x8000 << value, nil
}

// ramSizeFromHeader maps header byte 0x0149 to the cartridge RAM size in bytes.
func ramSizeFromHeader(value uint8) (int, error) {
	switch value {
	case 0x00:
		return 0, nil
	case 0x01:
		return 0x800, nil
	case 0x02:
		return 0x2000, nil
	case 0x03:
		return 0x8000, nil
	case 0x04:
		return 0x20000, nil
	case 0x05:
		return 0x10000, nil
	default:
		return 0, fmt.Errorf("%w: RAM size code 0x%02X", ErrBadHeader, value)
	}
}

// Cartridge holds the raw ROM image, the RAM vector sized per the header and
// the parsed header metadata. It is only ever accessed through an MBC.
type Cartridge struct {
	rom      []byte
	ram      []byte
	title    string
	cartType CartridgeType
	romSize  int
	ramSize  int
}

// NewCartridge creates an empty 32KB cartridge, equivalent to powering the
// console on with nothing inserted. Useful for tests.
func NewCartridge() *Cartridge {
	return &Cartridge{
		rom:      make([]byte, 0x8000),
		ram:      make([]byte, 0x2000),
		cartType: RomOnlyType,
		romSize:  0x8000,
		ramSize:  0x2000,
	}
}

// NewCartridgeWithData parses the header of a ROM image and builds a
// Cartridge from it. Unrecognised header values return ErrBadHeader.
func NewCartridgeWithData(data []byte) (*Cartridge, error) {
	if len(data) < 0x0150 {
		return nil, fmt.Errorf("%w: image is %d bytes, smaller than the header", ErrBadHeader, len(data))
	}

	cartType, err := cartridgeTypeFromHeader(data[cartridgeTypeAddress])
	if err != nil {
		return nil, err
	}
	romSize, err := romSizeFromHeader(data[romSizeAddress])
	if err != nil {
		return nil, err
	}
	ramSize, err := ramSizeFromHeader(data[ramSizeAddress])
	if err != nil {
		return nil, err
	}

	rom := make([]byte, len(data))
	copy(rom, data)

	return &Cartridge{
		rom:      rom,
		ram:      make([]byte, ramSize),
		title:    parseTitle(data[titleStartAddress : titleEndAddress+1]),
		cartType: cartType,
		romSize:  romSize,
		ramSize:  ramSize,
	}, nil
}

// parseTitle reads the ASCII title up to the first NUL byte.
func parseTitle(raw []byte) string {
	if i := strings.IndexByte(string(raw), 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

// Title returns the game title from the header.
func (c *Cartridge) Title() string {
	return c.title
}

// Type returns the parsed cartridge type.
func (c *Cartridge) Type() CartridgeType {
	return c.cartType
}
