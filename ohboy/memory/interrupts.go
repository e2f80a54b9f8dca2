package memory

import "github.com/pgray/ohboy/ohboy/addr"

// InterruptState is the IE/IF register pair. Only the low five bits are
// meaningful; the upper three bits of IF always read as 1.
type InterruptState struct {
	enabled   uint8
	requested uint8
}

// NewInterruptState returns the post-boot register values.
func NewInterruptState() InterruptState {
	return InterruptState{
		enabled:   0x00,
		requested: 0xE1,
	}
}

// Request sets the flag bit for the given interrupt.
func (s *InterruptState) Request(interrupt addr.Interrupt) {
	s.requested |= uint8(interrupt)
}

// Clear resets the flag bit for the given interrupt.
func (s *InterruptState) Clear(interrupt addr.Interrupt) {
	s.requested &^= uint8(interrupt)
}

// Pending returns the set of interrupts that are both requested and enabled.
func (s *InterruptState) Pending() uint8 {
	return s.requested & s.enabled & 0x1F
}

// ReadEnable returns the IE register value.
func (s *InterruptState) ReadEnable() uint8 {
	return s.enabled
}

// WriteEnable sets the IE register value.
func (s *InterruptState) WriteEnable(value uint8) {
	s.enabled = value
}

// ReadFlags returns the IF register value. The unused upper bits read as 1.
func (s *InterruptState) ReadFlags() uint8 {
	return s.requested | 0xE0
}

// WriteFlags sets the IF register value.
func (s *InterruptState) WriteFlags(value uint8) {
	s.requested = value | 0xE0
}
