package memory

import "github.com/pgray/ohboy/ohboy/bit"

// JoypadKey represents a key on the joypad.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// Joypad models the P1 register: two 4-bit latches (d-pad and buttons)
// multiplexed onto the low bits by the selection bits 4-5. A low bit means
// the key is pressed. Bits 6-7 always read as 1.
type Joypad struct {
	// selection bits 4-5 as last written; a low bit selects the group
	selection uint8
	buttons   uint8
	dpad      uint8
}

// NewJoypad returns a joypad with no keys pressed and nothing selected.
func NewJoypad() Joypad {
	return Joypad{
		selection: 0x30,
		buttons:   0x0F,
		dpad:      0x0F,
	}
}

// Read composes the P1 register from the selection bits and key latches.
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.selection

	selectDpad := !bit.IsSet(4, j.selection)
	selectButtons := !bit.IsSet(5, j.selection)

	switch {
	case selectButtons && !selectDpad:
		result |= j.buttons & 0x0F
	case selectDpad && !selectButtons:
		result |= j.dpad & 0x0F
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	default:
		// nothing selected, the line floats high
		result |= 0x0F
	}

	return result
}

// Write stores the selection bits; the key bits are read-only.
func (j *Joypad) Write(value uint8) {
	j.selection = value & 0x30
}

func (j *Joypad) keyBit(key JoypadKey) (latch *uint8, index uint8) {
	switch key {
	case JoypadRight:
		return &j.dpad, 0
	case JoypadLeft:
		return &j.dpad, 1
	case JoypadUp:
		return &j.dpad, 2
	case JoypadDown:
		return &j.dpad, 3
	case JoypadA:
		return &j.buttons, 0
	case JoypadB:
		return &j.buttons, 1
	case JoypadSelect:
		return &j.buttons, 2
	default:
		return &j.buttons, 3
	}
}

// Press latches a key down. Returns true if this is a high-to-low
// transition, which requests the Joypad interrupt.
func (j *Joypad) Press(key JoypadKey) bool {
	latch, index := j.keyBit(key)
	wasReleased := bit.IsSet(index, *latch)
	*latch = bit.Reset(index, *latch)
	return wasReleased
}

// Release latches a key up.
func (j *Joypad) Release(key JoypadKey) {
	latch, index := j.keyBit(key)
	*latch = bit.Set(index, *latch)
}
