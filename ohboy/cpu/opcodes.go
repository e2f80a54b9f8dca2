package cpu

// instructionTable maps every unprefixed opcode to its descriptor. The
// opcodes that do not exist on the hardware (0xD3, 0xDB, 0xDD, 0xE3-0xE4,
// 0xEB-0xED, 0xF4, 0xFC-0xFD) are nil entries; fetching one is a fatal
// error. 0xCB is also nil: the fetch loop consumes it as the prefix for the
// CB table.
var instructionTable = [256]*instruction{
	0x00: {1, 4, 0, "NOP", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x01: {3, 12, 0, "LD BC, nn", func(c *CPU) instructionResult {
		c.setBC(c.readImmediateWord())
		return resultActionTaken
	}},
	0x02: {1, 8, 0, "LD (BC), A", func(c *CPU) instructionResult {
		c.memory.Write(c.getBC(), c.a)
		return resultActionTaken
	}},
	0x03: {1, 8, 0, "INC BC", func(c *CPU) instructionResult {
		c.setBC(c.getBC() + 1)
		return resultActionTaken
	}},
	0x04: {1, 4, 0, "INC B", func(c *CPU) instructionResult {
		c.b = c.inc(c.b)
		return resultActionTaken
	}},
	0x05: {1, 4, 0, "DEC B", func(c *CPU) instructionResult {
		c.b = c.dec(c.b)
		return resultActionTaken
	}},
	0x06: {2, 8, 0, "LD B, n", func(c *CPU) instructionResult {
		c.b = c.readImmediate()
		return resultActionTaken
	}},
	0x07: {1, 4, 0, "RLCA", func(c *CPU) instructionResult {
		c.a = c.rlc(c.a)
		c.resetFlag(zeroFlag)
		return resultActionTaken
	}},
	0x08: {3, 20, 0, "LD (nn), SP", func(c *CPU) instructionResult {
		c.memory.WriteWord(c.readImmediateWord(), c.sp)
		return resultActionTaken
	}},
	0x09: {1, 8, 0, "ADD HL, BC", func(c *CPU) instructionResult {
		c.addToHL(c.getBC())
		return resultActionTaken
	}},
	0x0A: {1, 8, 0, "LD A, (BC)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.getBC())
		return resultActionTaken
	}},
	0x0B: {1, 8, 0, "DEC BC", func(c *CPU) instructionResult {
		c.setBC(c.getBC() - 1)
		return resultActionTaken
	}},
	0x0C: {1, 4, 0, "INC C", func(c *CPU) instructionResult {
		c.c = c.inc(c.c)
		return resultActionTaken
	}},
	0x0D: {1, 4, 0, "DEC C", func(c *CPU) instructionResult {
		c.c = c.dec(c.c)
		return resultActionTaken
	}},
	0x0E: {2, 8, 0, "LD C, n", func(c *CPU) instructionResult {
		c.c = c.readImmediate()
		return resultActionTaken
	}},
	0x0F: {1, 4, 0, "RRCA", func(c *CPU) instructionResult {
		c.a = c.rrc(c.a)
		c.resetFlag(zeroFlag)
		return resultActionTaken
	}},
	0x10: {2, 4, 0, "STOP", func(c *CPU) instructionResult {
		// low-power mode is not modeled; executed as a no-op
		return resultNone
	}},
	0x11: {3, 12, 0, "LD DE, nn", func(c *CPU) instructionResult {
		c.setDE(c.readImmediateWord())
		return resultActionTaken
	}},
	0x12: {1, 8, 0, "LD (DE), A", func(c *CPU) instructionResult {
		c.memory.Write(c.getDE(), c.a)
		return resultActionTaken
	}},
	0x13: {1, 8, 0, "INC DE", func(c *CPU) instructionResult {
		c.setDE(c.getDE() + 1)
		return resultActionTaken
	}},
	0x14: {1, 4, 0, "INC D", func(c *CPU) instructionResult {
		c.d = c.inc(c.d)
		return resultActionTaken
	}},
	0x15: {1, 4, 0, "DEC D", func(c *CPU) instructionResult {
		c.d = c.dec(c.d)
		return resultActionTaken
	}},
	0x16: {2, 8, 0, "LD D, n", func(c *CPU) instructionResult {
		c.d = c.readImmediate()
		return resultActionTaken
	}},
	0x17: {1, 4, 0, "RLA", func(c *CPU) instructionResult {
		c.a = c.rl(c.a)
		c.resetFlag(zeroFlag)
		return resultActionTaken
	}},
	0x18: {2, 12, 0, "JR n", func(c *CPU) instructionResult {
		c.jr()
		return resultJumped
	}},
	0x19: {1, 8, 0, "ADD HL, DE", func(c *CPU) instructionResult {
		c.addToHL(c.getDE())
		return resultActionTaken
	}},
	0x1A: {1, 8, 0, "LD A, (DE)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.getDE())
		return resultActionTaken
	}},
	0x1B: {1, 8, 0, "DEC DE", func(c *CPU) instructionResult {
		c.setDE(c.getDE() - 1)
		return resultActionTaken
	}},
	0x1C: {1, 4, 0, "INC E", func(c *CPU) instructionResult {
		c.e = c.inc(c.e)
		return resultActionTaken
	}},
	0x1D: {1, 4, 0, "DEC E", func(c *CPU) instructionResult {
		c.e = c.dec(c.e)
		return resultActionTaken
	}},
	0x1E: {2, 8, 0, "LD E, n", func(c *CPU) instructionResult {
		c.e = c.readImmediate()
		return resultActionTaken
	}},
	0x1F: {1, 4, 0, "RRA", func(c *CPU) instructionResult {
		c.a = c.rr(c.a)
		c.resetFlag(zeroFlag)
		return resultActionTaken
	}},
	0x20: {2, 8, 12, "JR NZ, n", func(c *CPU) instructionResult {
		if !c.isSetFlag(zeroFlag) {
			c.jr()
			return resultJumped
		}
		return resultNone
	}},
	0x21: {3, 12, 0, "LD HL, nn", func(c *CPU) instructionResult {
		c.setHL(c.readImmediateWord())
		return resultActionTaken
	}},
	0x22: {1, 8, 0, "LD (HL+), A", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.a)
		c.setHL(c.getHL() + 1)
		return resultActionTaken
	}},
	0x23: {1, 8, 0, "INC HL", func(c *CPU) instructionResult {
		c.setHL(c.getHL() + 1)
		return resultActionTaken
	}},
	0x24: {1, 4, 0, "INC H", func(c *CPU) instructionResult {
		c.h = c.inc(c.h)
		return resultActionTaken
	}},
	0x25: {1, 4, 0, "DEC H", func(c *CPU) instructionResult {
		c.h = c.dec(c.h)
		return resultActionTaken
	}},
	0x26: {2, 8, 0, "LD H, n", func(c *CPU) instructionResult {
		c.h = c.readImmediate()
		return resultActionTaken
	}},
	0x27: {1, 4, 0, "DAA", func(c *CPU) instructionResult {
		c.daa()
		return resultActionTaken
	}},
	0x28: {2, 8, 12, "JR Z, n", func(c *CPU) instructionResult {
		if c.isSetFlag(zeroFlag) {
			c.jr()
			return resultJumped
		}
		return resultNone
	}},
	0x29: {1, 8, 0, "ADD HL, HL", func(c *CPU) instructionResult {
		c.addToHL(c.getHL())
		return resultActionTaken
	}},
	0x2A: {1, 8, 0, "LD A, (HL+)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.getHL())
		c.setHL(c.getHL() + 1)
		return resultActionTaken
	}},
	0x2B: {1, 8, 0, "DEC HL", func(c *CPU) instructionResult {
		c.setHL(c.getHL() - 1)
		return resultActionTaken
	}},
	0x2C: {1, 4, 0, "INC L", func(c *CPU) instructionResult {
		c.l = c.inc(c.l)
		return resultActionTaken
	}},
	0x2D: {1, 4, 0, "DEC L", func(c *CPU) instructionResult {
		c.l = c.dec(c.l)
		return resultActionTaken
	}},
	0x2E: {2, 8, 0, "LD L, n", func(c *CPU) instructionResult {
		c.l = c.readImmediate()
		return resultActionTaken
	}},
	0x2F: {1, 4, 0, "CPL", func(c *CPU) instructionResult {
		c.a = ^c.a
		c.setFlag(subFlag)
		c.setFlag(halfCarryFlag)
		return resultActionTaken
	}},
	0x30: {2, 8, 12, "JR NC, n", func(c *CPU) instructionResult {
		if !c.isSetFlag(carryFlag) {
			c.jr()
			return resultJumped
		}
		return resultNone
	}},
	0x31: {3, 12, 0, "LD SP, nn", func(c *CPU) instructionResult {
		c.sp = c.readImmediateWord()
		return resultActionTaken
	}},
	0x32: {1, 8, 0, "LD (HL-), A", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.a)
		c.setHL(c.getHL() - 1)
		return resultActionTaken
	}},
	0x33: {1, 8, 0, "INC SP", func(c *CPU) instructionResult {
		c.sp++
		return resultActionTaken
	}},
	0x34: {1, 12, 0, "INC (HL)", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.inc(c.memory.Read(c.getHL())))
		return resultActionTaken
	}},
	0x35: {1, 12, 0, "DEC (HL)", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.dec(c.memory.Read(c.getHL())))
		return resultActionTaken
	}},
	0x36: {2, 12, 0, "LD (HL), n", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.readImmediate())
		return resultActionTaken
	}},
	0x37: {1, 4, 0, "SCF", func(c *CPU) instructionResult {
		c.resetFlag(subFlag)
		c.resetFlag(halfCarryFlag)
		c.setFlag(carryFlag)
		return resultActionTaken
	}},
	0x38: {2, 8, 12, "JR C, n", func(c *CPU) instructionResult {
		if c.isSetFlag(carryFlag) {
			c.jr()
			return resultJumped
		}
		return resultNone
	}},
	0x39: {1, 8, 0, "ADD HL, SP", func(c *CPU) instructionResult {
		c.addToHL(c.sp)
		return resultActionTaken
	}},
	0x3A: {1, 8, 0, "LD A, (HL-)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.getHL())
		c.setHL(c.getHL() - 1)
		return resultActionTaken
	}},
	0x3B: {1, 8, 0, "DEC SP", func(c *CPU) instructionResult {
		c.sp--
		return resultActionTaken
	}},
	0x3C: {1, 4, 0, "INC A", func(c *CPU) instructionResult {
		c.a = c.inc(c.a)
		return resultActionTaken
	}},
	0x3D: {1, 4, 0, "DEC A", func(c *CPU) instructionResult {
		c.a = c.dec(c.a)
		return resultActionTaken
	}},
	0x3E: {2, 8, 0, "LD A, n", func(c *CPU) instructionResult {
		c.a = c.readImmediate()
		return resultActionTaken
	}},
	0x3F: {1, 4, 0, "CCF", func(c *CPU) instructionResult {
		c.resetFlag(subFlag)
		c.resetFlag(halfCarryFlag)
		c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
		return resultActionTaken
	}},
	0x40: {1, 4, 0, "LD B, B", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x41: {1, 4, 0, "LD B, C", func(c *CPU) instructionResult {
		c.b = c.c
		return resultActionTaken
	}},
	0x42: {1, 4, 0, "LD B, D", func(c *CPU) instructionResult {
		c.b = c.d
		return resultActionTaken
	}},
	0x43: {1, 4, 0, "LD B, E", func(c *CPU) instructionResult {
		c.b = c.e
		return resultActionTaken
	}},
	0x44: {1, 4, 0, "LD B, H", func(c *CPU) instructionResult {
		c.b = c.h
		return resultActionTaken
	}},
	0x45: {1, 4, 0, "LD B, L", func(c *CPU) instructionResult {
		c.b = c.l
		return resultActionTaken
	}},
	0x46: {1, 8, 0, "LD B, (HL)", func(c *CPU) instructionResult {
		c.b = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x47: {1, 4, 0, "LD B, A", func(c *CPU) instructionResult {
		c.b = c.a
		return resultActionTaken
	}},
	0x48: {1, 4, 0, "LD C, B", func(c *CPU) instructionResult {
		c.c = c.b
		return resultActionTaken
	}},
	0x49: {1, 4, 0, "LD C, C", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x4A: {1, 4, 0, "LD C, D", func(c *CPU) instructionResult {
		c.c = c.d
		return resultActionTaken
	}},
	0x4B: {1, 4, 0, "LD C, E", func(c *CPU) instructionResult {
		c.c = c.e
		return resultActionTaken
	}},
	0x4C: {1, 4, 0, "LD C, H", func(c *CPU) instructionResult {
		c.c = c.h
		return resultActionTaken
	}},
	0x4D: {1, 4, 0, "LD C, L", func(c *CPU) instructionResult {
		c.c = c.l
		return resultActionTaken
	}},
	0x4E: {1, 8, 0, "LD C, (HL)", func(c *CPU) instructionResult {
		c.c = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x4F: {1, 4, 0, "LD C, A", func(c *CPU) instructionResult {
		c.c = c.a
		return resultActionTaken
	}},
	0x50: {1, 4, 0, "LD D, B", func(c *CPU) instructionResult {
		c.d = c.b
		return resultActionTaken
	}},
	0x51: {1, 4, 0, "LD D, C", func(c *CPU) instructionResult {
		c.d = c.c
		return resultActionTaken
	}},
	0x52: {1, 4, 0, "LD D, D", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x53: {1, 4, 0, "LD D, E", func(c *CPU) instructionResult {
		c.d = c.e
		return resultActionTaken
	}},
	0x54: {1, 4, 0, "LD D, H", func(c *CPU) instructionResult {
		c.d = c.h
		return resultActionTaken
	}},
	0x55: {1, 4, 0, "LD D, L", func(c *CPU) instructionResult {
		c.d = c.l
		return resultActionTaken
	}},
	0x56: {1, 8, 0, "LD D, (HL)", func(c *CPU) instructionResult {
		c.d = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x57: {1, 4, 0, "LD D, A", func(c *CPU) instructionResult {
		c.d = c.a
		return resultActionTaken
	}},
	0x58: {1, 4, 0, "LD E, B", func(c *CPU) instructionResult {
		c.e = c.b
		return resultActionTaken
	}},
	0x59: {1, 4, 0, "LD E, C", func(c *CPU) instructionResult {
		c.e = c.c
		return resultActionTaken
	}},
	0x5A: {1, 4, 0, "LD E, D", func(c *CPU) instructionResult {
		c.e = c.d
		return resultActionTaken
	}},
	0x5B: {1, 4, 0, "LD E, E", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x5C: {1, 4, 0, "LD E, H", func(c *CPU) instructionResult {
		c.e = c.h
		return resultActionTaken
	}},
	0x5D: {1, 4, 0, "LD E, L", func(c *CPU) instructionResult {
		c.e = c.l
		return resultActionTaken
	}},
	0x5E: {1, 8, 0, "LD E, (HL)", func(c *CPU) instructionResult {
		c.e = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x5F: {1, 4, 0, "LD E, A", func(c *CPU) instructionResult {
		c.e = c.a
		return resultActionTaken
	}},
	0x60: {1, 4, 0, "LD H, B", func(c *CPU) instructionResult {
		c.h = c.b
		return resultActionTaken
	}},
	0x61: {1, 4, 0, "LD H, C", func(c *CPU) instructionResult {
		c.h = c.c
		return resultActionTaken
	}},
	0x62: {1, 4, 0, "LD H, D", func(c *CPU) instructionResult {
		c.h = c.d
		return resultActionTaken
	}},
	0x63: {1, 4, 0, "LD H, E", func(c *CPU) instructionResult {
		c.h = c.e
		return resultActionTaken
	}},
	0x64: {1, 4, 0, "LD H, H", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x65: {1, 4, 0, "LD H, L", func(c *CPU) instructionResult {
		c.h = c.l
		return resultActionTaken
	}},
	0x66: {1, 8, 0, "LD H, (HL)", func(c *CPU) instructionResult {
		c.h = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x67: {1, 4, 0, "LD H, A", func(c *CPU) instructionResult {
		c.h = c.a
		return resultActionTaken
	}},
	0x68: {1, 4, 0, "LD L, B", func(c *CPU) instructionResult {
		c.l = c.b
		return resultActionTaken
	}},
	0x69: {1, 4, 0, "LD L, C", func(c *CPU) instructionResult {
		c.l = c.c
		return resultActionTaken
	}},
	0x6A: {1, 4, 0, "LD L, D", func(c *CPU) instructionResult {
		c.l = c.d
		return resultActionTaken
	}},
	0x6B: {1, 4, 0, "LD L, E", func(c *CPU) instructionResult {
		c.l = c.e
		return resultActionTaken
	}},
	0x6C: {1, 4, 0, "LD L, H", func(c *CPU) instructionResult {
		c.l = c.h
		return resultActionTaken
	}},
	0x6D: {1, 4, 0, "LD L, L", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x6E: {1, 8, 0, "LD L, (HL)", func(c *CPU) instructionResult {
		c.l = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x6F: {1, 4, 0, "LD L, A", func(c *CPU) instructionResult {
		c.l = c.a
		return resultActionTaken
	}},
	0x70: {1, 8, 0, "LD (HL), B", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.b)
		return resultActionTaken
	}},
	0x71: {1, 8, 0, "LD (HL), C", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.c)
		return resultActionTaken
	}},
	0x72: {1, 8, 0, "LD (HL), D", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.d)
		return resultActionTaken
	}},
	0x73: {1, 8, 0, "LD (HL), E", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.e)
		return resultActionTaken
	}},
	0x74: {1, 8, 0, "LD (HL), H", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.h)
		return resultActionTaken
	}},
	0x75: {1, 8, 0, "LD (HL), L", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.l)
		return resultActionTaken
	}},
	0x76: {1, 4, 0, "HALT", func(c *CPU) instructionResult {
		c.halted = true
		return resultActionTaken
	}},
	0x77: {1, 8, 0, "LD (HL), A", func(c *CPU) instructionResult {
		c.memory.Write(c.getHL(), c.a)
		return resultActionTaken
	}},
	0x78: {1, 4, 0, "LD A, B", func(c *CPU) instructionResult {
		c.a = c.b
		return resultActionTaken
	}},
	0x79: {1, 4, 0, "LD A, C", func(c *CPU) instructionResult {
		c.a = c.c
		return resultActionTaken
	}},
	0x7A: {1, 4, 0, "LD A, D", func(c *CPU) instructionResult {
		c.a = c.d
		return resultActionTaken
	}},
	0x7B: {1, 4, 0, "LD A, E", func(c *CPU) instructionResult {
		c.a = c.e
		return resultActionTaken
	}},
	0x7C: {1, 4, 0, "LD A, H", func(c *CPU) instructionResult {
		c.a = c.h
		return resultActionTaken
	}},
	0x7D: {1, 4, 0, "LD A, L", func(c *CPU) instructionResult {
		c.a = c.l
		return resultActionTaken
	}},
	0x7E: {1, 8, 0, "LD A, (HL)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.getHL())
		return resultActionTaken
	}},
	0x7F: {1, 4, 0, "LD A, A", func(c *CPU) instructionResult {
		return resultNone
	}},
	0x80: {1, 4, 0, "ADD A, B", func(c *CPU) instructionResult {
		c.addToA(c.b)
		return resultActionTaken
	}},
	0x81: {1, 4, 0, "ADD A, C", func(c *CPU) instructionResult {
		c.addToA(c.c)
		return resultActionTaken
	}},
	0x82: {1, 4, 0, "ADD A, D", func(c *CPU) instructionResult {
		c.addToA(c.d)
		return resultActionTaken
	}},
	0x83: {1, 4, 0, "ADD A, E", func(c *CPU) instructionResult {
		c.addToA(c.e)
		return resultActionTaken
	}},
	0x84: {1, 4, 0, "ADD A, H", func(c *CPU) instructionResult {
		c.addToA(c.h)
		return resultActionTaken
	}},
	0x85: {1, 4, 0, "ADD A, L", func(c *CPU) instructionResult {
		c.addToA(c.l)
		return resultActionTaken
	}},
	0x86: {1, 8, 0, "ADD A, (HL)", func(c *CPU) instructionResult {
		c.addToA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0x87: {1, 4, 0, "ADD A, A", func(c *CPU) instructionResult {
		c.addToA(c.a)
		return resultActionTaken
	}},
	0x88: {1, 4, 0, "ADC A, B", func(c *CPU) instructionResult {
		c.adcToA(c.b)
		return resultActionTaken
	}},
	0x89: {1, 4, 0, "ADC A, C", func(c *CPU) instructionResult {
		c.adcToA(c.c)
		return resultActionTaken
	}},
	0x8A: {1, 4, 0, "ADC A, D", func(c *CPU) instructionResult {
		c.adcToA(c.d)
		return resultActionTaken
	}},
	0x8B: {1, 4, 0, "ADC A, E", func(c *CPU) instructionResult {
		c.adcToA(c.e)
		return resultActionTaken
	}},
	0x8C: {1, 4, 0, "ADC A, H", func(c *CPU) instructionResult {
		c.adcToA(c.h)
		return resultActionTaken
	}},
	0x8D: {1, 4, 0, "ADC A, L", func(c *CPU) instructionResult {
		c.adcToA(c.l)
		return resultActionTaken
	}},
	0x8E: {1, 8, 0, "ADC A, (HL)", func(c *CPU) instructionResult {
		c.adcToA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0x8F: {1, 4, 0, "ADC A, A", func(c *CPU) instructionResult {
		c.adcToA(c.a)
		return resultActionTaken
	}},
	0x90: {1, 4, 0, "SUB B", func(c *CPU) instructionResult {
		c.subFromA(c.b)
		return resultActionTaken
	}},
	0x91: {1, 4, 0, "SUB C", func(c *CPU) instructionResult {
		c.subFromA(c.c)
		return resultActionTaken
	}},
	0x92: {1, 4, 0, "SUB D", func(c *CPU) instructionResult {
		c.subFromA(c.d)
		return resultActionTaken
	}},
	0x93: {1, 4, 0, "SUB E", func(c *CPU) instructionResult {
		c.subFromA(c.e)
		return resultActionTaken
	}},
	0x94: {1, 4, 0, "SUB H", func(c *CPU) instructionResult {
		c.subFromA(c.h)
		return resultActionTaken
	}},
	0x95: {1, 4, 0, "SUB L", func(c *CPU) instructionResult {
		c.subFromA(c.l)
		return resultActionTaken
	}},
	0x96: {1, 8, 0, "SUB (HL)", func(c *CPU) instructionResult {
		c.subFromA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0x97: {1, 4, 0, "SUB A", func(c *CPU) instructionResult {
		c.subFromA(c.a)
		return resultActionTaken
	}},
	0x98: {1, 4, 0, "SBC A, B", func(c *CPU) instructionResult {
		c.sbcFromA(c.b)
		return resultActionTaken
	}},
	0x99: {1, 4, 0, "SBC A, C", func(c *CPU) instructionResult {
		c.sbcFromA(c.c)
		return resultActionTaken
	}},
	0x9A: {1, 4, 0, "SBC A, D", func(c *CPU) instructionResult {
		c.sbcFromA(c.d)
		return resultActionTaken
	}},
	0x9B: {1, 4, 0, "SBC A, E", func(c *CPU) instructionResult {
		c.sbcFromA(c.e)
		return resultActionTaken
	}},
	0x9C: {1, 4, 0, "SBC A, H", func(c *CPU) instructionResult {
		c.sbcFromA(c.h)
		return resultActionTaken
	}},
	0x9D: {1, 4, 0, "SBC A, L", func(c *CPU) instructionResult {
		c.sbcFromA(c.l)
		return resultActionTaken
	}},
	0x9E: {1, 8, 0, "SBC A, (HL)", func(c *CPU) instructionResult {
		c.sbcFromA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0x9F: {1, 4, 0, "SBC A, A", func(c *CPU) instructionResult {
		c.sbcFromA(c.a)
		return resultActionTaken
	}},
	0xA0: {1, 4, 0, "AND B", func(c *CPU) instructionResult {
		c.andA(c.b)
		return resultActionTaken
	}},
	0xA1: {1, 4, 0, "AND C", func(c *CPU) instructionResult {
		c.andA(c.c)
		return resultActionTaken
	}},
	0xA2: {1, 4, 0, "AND D", func(c *CPU) instructionResult {
		c.andA(c.d)
		return resultActionTaken
	}},
	0xA3: {1, 4, 0, "AND E", func(c *CPU) instructionResult {
		c.andA(c.e)
		return resultActionTaken
	}},
	0xA4: {1, 4, 0, "AND H", func(c *CPU) instructionResult {
		c.andA(c.h)
		return resultActionTaken
	}},
	0xA5: {1, 4, 0, "AND L", func(c *CPU) instructionResult {
		c.andA(c.l)
		return resultActionTaken
	}},
	0xA6: {1, 8, 0, "AND (HL)", func(c *CPU) instructionResult {
		c.andA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0xA7: {1, 4, 0, "AND A", func(c *CPU) instructionResult {
		c.andA(c.a)
		return resultActionTaken
	}},
	0xA8: {1, 4, 0, "XOR B", func(c *CPU) instructionResult {
		c.xorA(c.b)
		return resultActionTaken
	}},
	0xA9: {1, 4, 0, "XOR C", func(c *CPU) instructionResult {
		c.xorA(c.c)
		return resultActionTaken
	}},
	0xAA: {1, 4, 0, "XOR D", func(c *CPU) instructionResult {
		c.xorA(c.d)
		return resultActionTaken
	}},
	0xAB: {1, 4, 0, "XOR E", func(c *CPU) instructionResult {
		c.xorA(c.e)
		return resultActionTaken
	}},
	0xAC: {1, 4, 0, "XOR H", func(c *CPU) instructionResult {
		c.xorA(c.h)
		return resultActionTaken
	}},
	0xAD: {1, 4, 0, "XOR L", func(c *CPU) instructionResult {
		c.xorA(c.l)
		return resultActionTaken
	}},
	0xAE: {1, 8, 0, "XOR (HL)", func(c *CPU) instructionResult {
		c.xorA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0xAF: {1, 4, 0, "XOR A", func(c *CPU) instructionResult {
		c.xorA(c.a)
		return resultActionTaken
	}},
	0xB0: {1, 4, 0, "OR B", func(c *CPU) instructionResult {
		c.orA(c.b)
		return resultActionTaken
	}},
	0xB1: {1, 4, 0, "OR C", func(c *CPU) instructionResult {
		c.orA(c.c)
		return resultActionTaken
	}},
	0xB2: {1, 4, 0, "OR D", func(c *CPU) instructionResult {
		c.orA(c.d)
		return resultActionTaken
	}},
	0xB3: {1, 4, 0, "OR E", func(c *CPU) instructionResult {
		c.orA(c.e)
		return resultActionTaken
	}},
	0xB4: {1, 4, 0, "OR H", func(c *CPU) instructionResult {
		c.orA(c.h)
		return resultActionTaken
	}},
	0xB5: {1, 4, 0, "OR L", func(c *CPU) instructionResult {
		c.orA(c.l)
		return resultActionTaken
	}},
	0xB6: {1, 8, 0, "OR (HL)", func(c *CPU) instructionResult {
		c.orA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0xB7: {1, 4, 0, "OR A", func(c *CPU) instructionResult {
		c.orA(c.a)
		return resultActionTaken
	}},
	0xB8: {1, 4, 0, "CP B", func(c *CPU) instructionResult {
		c.compareA(c.b)
		return resultActionTaken
	}},
	0xB9: {1, 4, 0, "CP C", func(c *CPU) instructionResult {
		c.compareA(c.c)
		return resultActionTaken
	}},
	0xBA: {1, 4, 0, "CP D", func(c *CPU) instructionResult {
		c.compareA(c.d)
		return resultActionTaken
	}},
	0xBB: {1, 4, 0, "CP E", func(c *CPU) instructionResult {
		c.compareA(c.e)
		return resultActionTaken
	}},
	0xBC: {1, 4, 0, "CP H", func(c *CPU) instructionResult {
		c.compareA(c.h)
		return resultActionTaken
	}},
	0xBD: {1, 4, 0, "CP L", func(c *CPU) instructionResult {
		c.compareA(c.l)
		return resultActionTaken
	}},
	0xBE: {1, 8, 0, "CP (HL)", func(c *CPU) instructionResult {
		c.compareA(c.memory.Read(c.getHL()))
		return resultActionTaken
	}},
	0xBF: {1, 4, 0, "CP A", func(c *CPU) instructionResult {
		c.compareA(c.a)
		return resultActionTaken
	}},
	0xC0: {1, 8, 20, "RET NZ", func(c *CPU) instructionResult {
		if !c.isSetFlag(zeroFlag) {
			c.ret()
			return resultJumped
		}
		return resultNone
	}},
	0xC1: {1, 12, 0, "POP BC", func(c *CPU) instructionResult {
		c.setBC(c.popStack())
		return resultActionTaken
	}},
	0xC2: {3, 12, 16, "JP NZ, nn", func(c *CPU) instructionResult {
		if !c.isSetFlag(zeroFlag) {
			c.jp()
			return resultJumped
		}
		return resultNone
	}},
	0xC3: {3, 16, 0, "JP nn", func(c *CPU) instructionResult {
		c.jp()
		return resultJumped
	}},
	0xC4: {3, 12, 24, "CALL NZ, nn", func(c *CPU) instructionResult {
		if !c.isSetFlag(zeroFlag) {
			c.call()
			return resultJumped
		}
		return resultNone
	}},
	0xC5: {1, 16, 0, "PUSH BC", func(c *CPU) instructionResult {
		c.pushStack(c.getBC())
		return resultActionTaken
	}},
	0xC6: {2, 8, 0, "ADD A, n", func(c *CPU) instructionResult {
		c.addToA(c.readImmediate())
		return resultActionTaken
	}},
	0xC7: {1, 16, 0, "RST 00H", func(c *CPU) instructionResult {
		c.rst(0x0000)
		return resultJumped
	}},
	0xC8: {1, 8, 20, "RET Z", func(c *CPU) instructionResult {
		if c.isSetFlag(zeroFlag) {
			c.ret()
			return resultJumped
		}
		return resultNone
	}},
	0xC9: {1, 16, 0, "RET", func(c *CPU) instructionResult {
		c.ret()
		return resultJumped
	}},
	0xCA: {3, 12, 16, "JP Z, nn", func(c *CPU) instructionResult {
		if c.isSetFlag(zeroFlag) {
			c.jp()
			return resultJumped
		}
		return resultNone
	}},
	0xCC: {3, 12, 24, "CALL Z, nn", func(c *CPU) instructionResult {
		if c.isSetFlag(zeroFlag) {
			c.call()
			return resultJumped
		}
		return resultNone
	}},
	0xCD: {3, 24, 0, "CALL nn", func(c *CPU) instructionResult {
		c.call()
		return resultJumped
	}},
	0xCE: {2, 8, 0, "ADC A, n", func(c *CPU) instructionResult {
		c.adcToA(c.readImmediate())
		return resultActionTaken
	}},
	0xCF: {1, 16, 0, "RST 08H", func(c *CPU) instructionResult {
		c.rst(0x0008)
		return resultJumped
	}},
	0xD0: {1, 8, 20, "RET NC", func(c *CPU) instructionResult {
		if !c.isSetFlag(carryFlag) {
			c.ret()
			return resultJumped
		}
		return resultNone
	}},
	0xD1: {1, 12, 0, "POP DE", func(c *CPU) instructionResult {
		c.setDE(c.popStack())
		return resultActionTaken
	}},
	0xD2: {3, 12, 16, "JP NC, nn", func(c *CPU) instructionResult {
		if !c.isSetFlag(carryFlag) {
			c.jp()
			return resultJumped
		}
		return resultNone
	}},
	0xD4: {3, 12, 24, "CALL NC, nn", func(c *CPU) instructionResult {
		if !c.isSetFlag(carryFlag) {
			c.call()
			return resultJumped
		}
		return resultNone
	}},
	0xD5: {1, 16, 0, "PUSH DE", func(c *CPU) instructionResult {
		c.pushStack(c.getDE())
		return resultActionTaken
	}},
	0xD6: {2, 8, 0, "SUB n", func(c *CPU) instructionResult {
		c.subFromA(c.readImmediate())
		return resultActionTaken
	}},
	0xD7: {1, 16, 0, "RST 10H", func(c *CPU) instructionResult {
		c.rst(0x0010)
		return resultJumped
	}},
	0xD8: {1, 8, 20, "RET C", func(c *CPU) instructionResult {
		if c.isSetFlag(carryFlag) {
			c.ret()
			return resultJumped
		}
		return resultNone
	}},
	0xD9: {1, 16, 0, "RETI", func(c *CPU) instructionResult {
		c.interruptsEnabled = true
		c.ret()
		return resultJumped
	}},
	0xDA: {3, 12, 16, "JP C, nn", func(c *CPU) instructionResult {
		if c.isSetFlag(carryFlag) {
			c.jp()
			return resultJumped
		}
		return resultNone
	}},
	0xDC: {3, 12, 24, "CALL C, nn", func(c *CPU) instructionResult {
		if c.isSetFlag(carryFlag) {
			c.call()
			return resultJumped
		}
		return resultNone
	}},
	0xDE: {2, 8, 0, "SBC A, n", func(c *CPU) instructionResult {
		c.sbcFromA(c.readImmediate())
		return resultActionTaken
	}},
	0xDF: {1, 16, 0, "RST 18H", func(c *CPU) instructionResult {
		c.rst(0x0018)
		return resultJumped
	}},
	0xE0: {2, 12, 0, "LDH (n), A", func(c *CPU) instructionResult {
		c.memory.Write(0xFF00+uint16(c.readImmediate()), c.a)
		return resultActionTaken
	}},
	0xE1: {1, 12, 0, "POP HL", func(c *CPU) instructionResult {
		c.setHL(c.popStack())
		return resultActionTaken
	}},
	0xE2: {1, 8, 0, "LD (C), A", func(c *CPU) instructionResult {
		c.memory.Write(0xFF00+uint16(c.c), c.a)
		return resultActionTaken
	}},
	0xE5: {1, 16, 0, "PUSH HL", func(c *CPU) instructionResult {
		c.pushStack(c.getHL())
		return resultActionTaken
	}},
	0xE6: {2, 8, 0, "AND n", func(c *CPU) instructionResult {
		c.andA(c.readImmediate())
		return resultActionTaken
	}},
	0xE7: {1, 16, 0, "RST 20H", func(c *CPU) instructionResult {
		c.rst(0x0020)
		return resultJumped
	}},
	0xE8: {2, 16, 0, "ADD SP, n", func(c *CPU) instructionResult {
		c.sp = c.addSignedToSP()
		return resultActionTaken
	}},
	0xE9: {1, 4, 0, "JP (HL)", func(c *CPU) instructionResult {
		c.pc = c.getHL()
		return resultJumped
	}},
	0xEA: {3, 16, 0, "LD (nn), A", func(c *CPU) instructionResult {
		c.memory.Write(c.readImmediateWord(), c.a)
		return resultActionTaken
	}},
	0xEE: {2, 8, 0, "XOR n", func(c *CPU) instructionResult {
		c.xorA(c.readImmediate())
		return resultActionTaken
	}},
	0xEF: {1, 16, 0, "RST 28H", func(c *CPU) instructionResult {
		c.rst(0x0028)
		return resultJumped
	}},
	0xF0: {2, 12, 0, "LDH A, (n)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(0xFF00 + uint16(c.readImmediate()))
		return resultActionTaken
	}},
	0xF1: {1, 12, 0, "POP AF", func(c *CPU) instructionResult {
		c.setAF(c.popStack())
		return resultActionTaken
	}},
	0xF2: {1, 8, 0, "LD A, (C)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(0xFF00 + uint16(c.c))
		return resultActionTaken
	}},
	0xF3: {1, 4, 0, "DI", func(c *CPU) instructionResult {
		c.interruptsEnabled = false
		c.eiDelay = 0
		return resultActionTaken
	}},
	0xF5: {1, 16, 0, "PUSH AF", func(c *CPU) instructionResult {
		c.pushStack(c.getAF())
		return resultActionTaken
	}},
	0xF6: {2, 8, 0, "OR n", func(c *CPU) instructionResult {
		c.orA(c.readImmediate())
		return resultActionTaken
	}},
	0xF7: {1, 16, 0, "RST 30H", func(c *CPU) instructionResult {
		c.rst(0x0030)
		return resultJumped
	}},
	0xF8: {2, 12, 0, "LD HL, SP+n", func(c *CPU) instructionResult {
		c.setHL(c.addSignedToSP())
		return resultActionTaken
	}},
	0xF9: {1, 8, 0, "LD SP, HL", func(c *CPU) instructionResult {
		c.sp = c.getHL()
		return resultActionTaken
	}},
	0xFA: {3, 16, 0, "LD A, (nn)", func(c *CPU) instructionResult {
		c.a = c.memory.Read(c.readImmediateWord())
		return resultActionTaken
	}},
	0xFB: {1, 4, 0, "EI", func(c *CPU) instructionResult {
		// takes effect after the next instruction completes
		c.eiDelay = 2
		return resultActionTaken
	}},
	0xFE: {2, 8, 0, "CP n", func(c *CPU) instructionResult {
		c.compareA(c.readImmediate())
		return resultActionTaken
	}},
	0xFF: {1, 16, 0, "RST 38H", func(c *CPU) instructionResult {
		c.rst(0x0038)
		return resultJumped
	}},
}
