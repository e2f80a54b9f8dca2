package memory

import (
	"fmt"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/pgray/ohboy/ohboy/bit"
)

const divCycles = 256

// Timer implements the DIV/TIMA/TMA/TAC registers. Two cycle accumulators
// keep fractional progress so that steps larger than one period never lose
// ticks. A TIMA overflow reloads TMA and latches the Timer interrupt, which
// the MMU pulls after each step.
type Timer struct {
	divider uint8 // DIV
	counter uint8 // TIMA
	modulo  uint8 // TMA
	control uint8 // TAC

	interruptFired bool

	cyclesDiv  int
	cyclesTima int
}

// NewTimer returns the post-boot timer state.
func NewTimer() Timer {
	return Timer{
		divider: 0x18,
		control: 0xF8,
	}
}

// timaPeriod returns the TIMA tick period in cycles for the current TAC
// speed bits.
func (t *Timer) timaPeriod() int {
	switch t.control & 0x03 {
	case 0x00:
		return 1024
	case 0x01:
		return 16
	case 0x02:
		return 64
	case 0x03:
		return 256
	}
	panic(fmt.Sprintf("unknown timer speed: TAC=0x%02X", t.control))
}

// Tick advances the timer by the given number of CPU cycles.
func (t *Timer) Tick(cycles int) {
	t.cyclesDiv += cycles
	for t.cyclesDiv >= divCycles {
		t.cyclesDiv -= divCycles
		t.divider++
	}

	if !bit.IsSet(2, t.control) {
		return
	}

	period := t.timaPeriod()
	t.cyclesTima += cycles
	for t.cyclesTima >= period {
		t.cyclesTima -= period
		if t.counter == 0xFF {
			t.counter = t.modulo
			t.interruptFired = true
		} else {
			t.counter++
		}
	}
}

func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case addr.DIV:
		return t.divider
	case addr.TIMA:
		return t.counter
	case addr.TMA:
		return t.modulo
	case addr.TAC:
		return t.control
	default:
		return 0xFF
	}
}

func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case addr.DIV:
		// any write resets the divider
		t.divider = 0
		t.cyclesDiv = 0
	case addr.TIMA:
		t.counter = value
	case addr.TMA:
		t.modulo = value
	case addr.TAC:
		t.control = value
	}
}
