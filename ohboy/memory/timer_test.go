package memory

import (
	"testing"

	"github.com/pgray/ohboy/ohboy/addr"
	"github.com/stretchr/testify/assert"
)

func TestTimer_div(t *testing.T) {
	t.Run("increments every 256 cycles", func(t *testing.T) {
		timer := NewTimer()
		start := timer.Read(addr.DIV)

		timer.Tick(255)
		assert.Equal(t, start, timer.Read(addr.DIV))

		timer.Tick(1)
		assert.Equal(t, start+1, timer.Read(addr.DIV))
	})

	t.Run("keeps fractional cycles", func(t *testing.T) {
		timer := NewTimer()
		start := timer.Read(addr.DIV)

		// 4 * 200 = 800 cycles = 3 DIV ticks + 32 left over
		for i := 0; i < 4; i++ {
			timer.Tick(200)
		}
		assert.Equal(t, start+3, timer.Read(addr.DIV))
	})

	t.Run("large steps produce multiple ticks", func(t *testing.T) {
		timer := NewTimer()
		start := timer.Read(addr.DIV)

		timer.Tick(256 * 3)
		assert.Equal(t, start+3, timer.Read(addr.DIV))
	})

	t.Run("any write resets to zero", func(t *testing.T) {
		timer := NewTimer()
		timer.Tick(1000)

		timer.Write(addr.DIV, 0xAB)
		assert.Equal(t, uint8(0), timer.Read(addr.DIV))

		// the accumulator resets too
		timer.Tick(255)
		assert.Equal(t, uint8(0), timer.Read(addr.DIV))
	})
}

func TestTimer_tima(t *testing.T) {
	t.Run("disabled when TAC bit 2 clear", func(t *testing.T) {
		timer := NewTimer()
		timer.Write(addr.TAC, 0x00)

		timer.Tick(4096)
		assert.Equal(t, uint8(0), timer.Read(addr.TIMA))
	})

	t.Run("tick rates per TAC speed bits", func(t *testing.T) {
		testCases := []struct {
			tac    uint8
			period int
		}{
			{0x04, 1024},
			{0x05, 16},
			{0x06, 64},
			{0x07, 256},
		}
		for _, tC := range testCases {
			timer := NewTimer()
			timer.Write(addr.TAC, tC.tac)

			timer.Tick(tC.period - 1)
			assert.Equal(t, uint8(0), timer.Read(addr.TIMA))

			timer.Tick(1)
			assert.Equal(t, uint8(1), timer.Read(addr.TIMA))
		}
	})

	t.Run("overflow reloads TMA and fires the interrupt", func(t *testing.T) {
		timer := NewTimer()
		timer.Write(addr.TAC, 0x05)
		timer.Write(addr.TMA, 0x23)
		timer.Write(addr.TIMA, 0xFF)

		timer.Tick(16)

		assert.Equal(t, uint8(0x23), timer.Read(addr.TIMA))
		assert.True(t, timer.interruptFired)
	})

	t.Run("one big step yields several increments", func(t *testing.T) {
		timer := NewTimer()
		timer.Write(addr.TAC, 0x05) // every 16 cycles

		timer.Tick(16 * 5)
		assert.Equal(t, uint8(5), timer.Read(addr.TIMA))
	})
}
