package cpu

import (
	"fmt"

	"github.com/pgray/ohboy/ohboy/bit"
)

// cbTarget describes one of the eight operand encodings in a CB opcode's low
// three bits: B, C, D, E, H, L, (HL), A.
type cbTarget struct {
	name  string
	read  func(*CPU) uint8
	write func(*CPU, uint8)
}

var cbTargets = [8]cbTarget{
	{"B", func(c *CPU) uint8 { return c.b }, func(c *CPU, v uint8) { c.b = v }},
	{"C", func(c *CPU) uint8 { return c.c }, func(c *CPU, v uint8) { c.c = v }},
	{"D", func(c *CPU) uint8 { return c.d }, func(c *CPU, v uint8) { c.d = v }},
	{"E", func(c *CPU) uint8 { return c.e }, func(c *CPU, v uint8) { c.e = v }},
	{"H", func(c *CPU) uint8 { return c.h }, func(c *CPU, v uint8) { c.h = v }},
	{"L", func(c *CPU) uint8 { return c.l }, func(c *CPU, v uint8) { c.l = v }},
	{"(HL)",
		func(c *CPU) uint8 { return c.memory.Read(c.getHL()) },
		func(c *CPU, v uint8) { c.memory.Write(c.getHL(), v) }},
	{"A", func(c *CPU) uint8 { return c.a }, func(c *CPU, v uint8) { c.a = v }},
}

// cbRotates maps opcode bits 5-3 of the 0x00-0x3F range to the rotate/shift
// operation they encode.
var cbRotates = [8]struct {
	name  string
	apply func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rlc},
	{"RRC", (*CPU).rrc},
	{"RL", (*CPU).rl},
	{"RR", (*CPU).rr},
	{"SLA", (*CPU).sla},
	{"SRA", (*CPU).sra},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).srl},
}

// cbInstructionTable holds the 256 CB-prefixed descriptors. The encoding is
// uniform, so the table is built by dispatching on the opcode's bit fields:
// bits 7-6 select the operation family (rotate/shift, BIT, RES, SET), bits
// 5-3 the rotate kind or bit number, bits 2-0 the target register.
var cbInstructionTable [256]*instruction

func init() {
	for op := 0; op < 256; op++ {
		target := cbTargets[op&0x07]
		index := uint8((op >> 3) & 0x07)

		cycles := 8
		if op&0x07 == 0x06 {
			cycles = 16
		}

		var mnemonic string
		var handler func(*CPU) instructionResult

		switch op >> 6 {
		case 0:
			rotate := cbRotates[index]
			mnemonic = rotate.name + " " + target.name
			handler = func(c *CPU) instructionResult {
				target.write(c, rotate.apply(c, target.read(c)))
				return resultActionTaken
			}
		case 1:
			// BIT only reads its operand, so the (HL) form is cheaper
			if op&0x07 == 0x06 {
				cycles = 12
			}
			mnemonic = fmt.Sprintf("BIT %d, %s", index, target.name)
			handler = func(c *CPU) instructionResult {
				c.bitTest(index, target.read(c))
				return resultActionTaken
			}
		case 2:
			mnemonic = fmt.Sprintf("RES %d, %s", index, target.name)
			handler = func(c *CPU) instructionResult {
				target.write(c, bit.Reset(index, target.read(c)))
				return resultActionTaken
			}
		default:
			mnemonic = fmt.Sprintf("SET %d, %s", index, target.name)
			handler = func(c *CPU) instructionResult {
				target.write(c, bit.Set(index, target.read(c)))
				return resultActionTaken
			}
		}

		cbInstructionTable[op] = &instruction{
			length:   2,
			cycles:   cycles,
			mnemonic: mnemonic,
			handler:  handler,
		}
	}
}
