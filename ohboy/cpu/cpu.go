package cpu

import (
	"fmt"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/pgray/ohboy/ohboy/memory"
)

// Flag is one of the 4 possible flags in the flag register (low part of AF).
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// CPU holds the LR35902 state and executes instructions against the MMU.
type CPU struct {
	memory *memory.MMU

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	interruptsEnabled bool
	halted            bool
	// eiDelay implements EI's one-instruction delay: IME turns on only
	// after the instruction following EI completes.
	eiDelay int

	currentOpcode uint16
}

// New returns a CPU in the post-boot state, as left by the DMG boot ROM.
func New(mmu *memory.MMU) *CPU {
	return &CPU{
		memory: mmu,
		a:      0x01,
		f:      0xB0,
		b:      0x00,
		c:      0x13,
		d:      0x00,
		e:      0xD8,
		h:      0x01,
		l:      0x4D,
		sp:     0xFFFE,
		pc:     0x0100,
	}
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// interruptVectors lists the five interrupts in dispatch priority order with
// their fixed service routine addresses.
var interruptVectors = []struct {
	interrupt addr.Interrupt
	isr       uint16
}{
	{addr.VBlankInterrupt, addr.VBlankISR},
	{addr.LCDStatInterrupt, addr.LCDStatISR},
	{addr.TimerInterrupt, addr.TimerISR},
	{addr.SerialInterrupt, addr.SerialISR},
	{addr.JoypadInterrupt, addr.JoypadISR},
}

// handleInterrupts services the highest priority pending interrupt, if any.
// Returns the consumed cycles, or 0 when nothing was dispatched.
func (c *CPU) handleInterrupts() int {
	pending := c.memory.PendingInterrupts()
	if pending == 0 {
		return 0
	}

	c.halted = false

	for _, v := range interruptVectors {
		if pending&uint8(v.interrupt) == 0 {
			continue
		}
		c.interruptsEnabled = false
		c.eiDelay = 0
		c.pushStack(c.pc)
		c.memory.ClearInterrupt(v.interrupt)
		c.pc = v.isr
		return 20
	}

	return 0
}

// Tick executes a single instruction (or services an interrupt) and returns
// the number of cycles consumed.
func (c *CPU) Tick() int {
	if c.interruptsEnabled {
		if cycles := c.handleInterrupts(); cycles > 0 {
			return cycles
		}
	}

	if c.halted {
		if c.memory.PendingInterrupts() != 0 {
			// wake up; with IME clear execution resumes without dispatch
			c.halted = false
		} else {
			return 4
		}
	}

	opcode := uint16(c.memory.Read(c.pc))
	var inst *instruction
	if opcode == 0xCB {
		opcode = 0xCB00 | uint16(c.memory.Read(c.pc+1))
		inst = cbInstructionTable[opcode&0xFF]
	} else {
		inst = instructionTable[opcode]
	}
	c.currentOpcode = opcode

	if inst == nil {
		panic(fmt.Sprintf("unimplemented opcode 0x%02X at PC 0x%04X", opcode, c.pc))
	}

	result := inst.handler(c)
	if result != resultJumped {
		c.pc += inst.length
	}

	cycles := inst.cycles
	if result != resultNone && inst.cyclesBranch != 0 {
		cycles = inst.cyclesBranch
	}

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.interruptsEnabled = true
		}
	}

	return cycles
}

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

// flagToBit returns 1 if the flag is set, 0 otherwise.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}
