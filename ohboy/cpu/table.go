package cpu

// instructionResult is the tag a handler returns to the fetch loop.
type instructionResult uint8

const (
	// resultNone: nothing special happened (e.g. a conditional branch that
	// was not taken). PC advances by the instruction length and the baseline
	// cycle count applies.
	resultNone instructionResult = iota
	// resultActionTaken: the instruction did its work; a conditional that
	// reports this (or resultJumped) costs cyclesBranch when set.
	resultActionTaken
	// resultJumped: the handler already set PC; the fetch loop must not
	// advance it.
	resultJumped
)

// instruction describes one opcode: its encoded length in bytes, the
// baseline cycle cost, the cost when a conditional branch is taken
// (0 when the instruction has no conditional variant), a mnemonic for
// diagnostics and the handler that mutates CPU and memory state.
type instruction struct {
	length       uint16
	cycles       int
	cyclesBranch int
	mnemonic     string
	handler      func(*CPU) instructionResult
}
