package cpu

import "github.com/pgray/ohboy/ohboy/bit"

// The eight 8-bit registers pair up into four 16-bit views. The pairs are
// big-endian: the first register holds the high byte.

func (c *CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f)
}

// setAF writes the AF pair. The low nibble of F does not exist in hardware
// and is always masked to zero.
func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) getBC() uint16 {
	return bit.Combine(c.b, c.c)
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) getDE() uint16 {
	return bit.Combine(c.d, c.e)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) getHL() uint16 {
	return bit.Combine(c.h, c.l)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}
