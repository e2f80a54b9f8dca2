package cpu

import "github.com/pgray/ohboy/ohboy/bit"

// Operand helpers shared between the regular and CB opcode handlers. Every
// helper that touches F writes a complete flag pattern.

// readImmediate reads the byte operand following the opcode.
func (c *CPU) readImmediate() uint8 {
	return c.memory.Read(c.pc + 1)
}

// readImmediateWord reads the little-endian word operand following the opcode.
func (c *CPU) readImmediateWord() uint16 {
	return c.memory.ReadWord(c.pc + 1)
}

// pushStack pre-decrements SP by 2, then writes the word little-endian.
func (c *CPU) pushStack(value uint16) {
	c.sp -= 2
	c.memory.WriteWord(c.sp, value)
}

// popStack reads the word at SP, then post-increments SP by 2.
func (c *CPU) popStack() uint16 {
	value := c.memory.ReadWord(c.sp)
	c.sp += 2
	return value
}

func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value) > 0xFF)

	c.a = result
}

func (c *CPU) adcToA(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := a + value + carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF)+carry > 0xF)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.a = result
}

func (c *CPU) subFromA(value uint8) {
	a := c.a
	c.a = a - value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0xF < value&0xF)
	c.setFlagToCondition(carryFlag, a < value)
}

func (c *CPU) sbcFromA(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	c.a = a - value - carry

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, int(a&0xF) < int(value&0xF)+int(carry))
	c.setFlagToCondition(carryFlag, int(a) < int(value)+int(carry))
}

// compareA sets the flags of a subtraction without changing A.
func (c *CPU) compareA(value uint8) {
	a := c.a

	c.setFlagToCondition(zeroFlag, a == value)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0xF < value&0xF)
	c.setFlagToCondition(carryFlag, a < value)
}

func (c *CPU) andA(value uint8) {
	c.a &= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) orA(value uint8) {
	c.a |= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xorA(value uint8) {
	c.a ^= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) inc(value uint8) uint8 {
	result := value + 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0xF)

	return result
}

func (c *CPU) dec(value uint8) uint8 {
	result := value - 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0x0)

	return result
}

// addToHL adds a 16 bit value to HL. Z is unchanged.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := hl + value

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.setFlagToCondition(carryFlag, uint32(hl)+uint32(value) > 0xFFFF)

	c.setHL(result)
}

// addSignedToSP computes SP plus the signed immediate operand. H and C come
// from the unsigned low-byte addition; Z and N are always cleared.
func (c *CPU) addSignedToSP() uint16 {
	offset := c.readImmediate()
	sp := c.sp
	result := uint16(int32(sp) + int32(int8(offset)))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+uint16(offset&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+uint16(offset) > 0xFF)

	return result
}

// The rotate and shift helpers implement CB-prefix semantics: Z is set from
// the result. The accumulator forms (RLCA, RLA, RRCA, RRA) clear Z afterwards.

func (c *CPU) rlc(value uint8) uint8 {
	carry := value >> 7
	result := value<<1 | carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)

	return result
}

func (c *CPU) rl(value uint8) uint8 {
	result := value<<1 | c.flagToBit(carryFlag)

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value>>7 == 1)

	return result
}

func (c *CPU) rrc(value uint8) uint8 {
	carry := value & 1
	result := value>>1 | carry<<7

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)

	return result
}

func (c *CPU) rr(value uint8) uint8 {
	result := value>>1 | c.flagToBit(carryFlag)<<7

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&1 == 1)

	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value>>7 == 1)

	return result
}

// sra shifts right keeping bit 7 (arithmetic shift).
func (c *CPU) sra(value uint8) uint8 {
	result := value>>1 | value&0x80

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&1 == 1)

	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&1 == 1)

	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)

	return result
}

// bitTest checks a single bit. C is unchanged.
func (c *CPU) bitTest(index, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// daa adjusts A after a BCD addition or subtraction.
func (c *CPU) daa() {
	a := uint16(c.a)

	if !c.isSetFlag(subFlag) {
		if c.isSetFlag(halfCarryFlag) || a&0xF > 0x9 {
			a += 0x06
		}
		if c.isSetFlag(carryFlag) || a > 0x9F {
			a += 0x60
		}
	} else {
		if c.isSetFlag(halfCarryFlag) {
			a = (a - 0x06) & 0xFF
		}
		if c.isSetFlag(carryFlag) {
			a -= 0x60
		}
	}

	if a&0x100 != 0 {
		c.setFlag(carryFlag)
	}
	c.resetFlag(halfCarryFlag)

	c.a = uint8(a)
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

// jr adds the signed immediate operand to the address of the next
// instruction (PC+2).
func (c *CPU) jr() {
	offset := int8(c.readImmediate())
	c.pc = uint16(int32(c.pc) + 2 + int32(offset))
}

// jp jumps to the immediate word operand.
func (c *CPU) jp() {
	c.pc = c.readImmediateWord()
}

// call pushes the address of the next instruction (PC+3) and jumps to the
// immediate word operand.
func (c *CPU) call() {
	c.pushStack(c.pc + 3)
	c.pc = c.readImmediateWord()
}

func (c *CPU) ret() {
	c.pc = c.popStack()
}

// rst pushes the address of the next instruction and jumps to a fixed vector.
func (c *CPU) rst(vector uint16) {
	c.pushStack(c.pc + 1)
	c.pc = vector
}
