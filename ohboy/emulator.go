package ohboy

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pgray/ohboy/ohboy/cpu"
	"github.com/pgray/ohboy/ohboy/memory"
	"github.com/pgray/ohboy/ohboy/video"
)

// CyclesPerFrame is the number of CPU cycles in one full video frame:
// 154 scanlines of 456 cycles each.
const CyclesPerFrame = 70224

// Emulator is the root struct and entry point for running the emulation.
// It owns all mutable state; the front end only reads the framebuffer
// between calls to RunUntilFrame.
type Emulator struct {
	cpu *cpu.CPU
	mmu *memory.MMU

	instructionCount uint64
	frameCount       uint64
}

func newWithMMU(mmu *memory.MMU) *Emulator {
	return &Emulator{
		cpu: cpu.New(mmu),
		mmu: mmu,
	}
}

// New creates an emulator with no cartridge inserted. Useful for tests.
func New() *Emulator {
	return newWithMMU(memory.New())
}

// NewWithCartridgeData creates an emulator from a raw ROM image.
func NewWithCartridgeData(data []byte) (*Emulator, error) {
	cart, err := memory.NewCartridgeWithData(data)
	if err != nil {
		return nil, err
	}

	mmu, err := memory.NewWithCartridge(cart)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded cartridge",
		"title", cart.Title(),
		"type", cart.Type().String(),
		"size", len(data))

	return newWithMMU(mmu), nil
}

// NewWithFile creates an emulator and loads the ROM file at the given path.
func NewWithFile(path string) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	return NewWithCartridgeData(data)
}

// RunUntilFrame steps the CPU and ticks the MMU-owned devices until a full
// frame's worth of cycles has elapsed.
func (e *Emulator) RunUntilFrame() {
	total := 0
	for total < CyclesPerFrame {
		cycles := e.cpu.Tick()
		e.mmu.Tick(cycles)
		e.instructionCount++
		total += cycles
	}

	e.frameCount++
	if e.frameCount%60 == 0 {
		slog.Debug("Frame completed",
			"frame", e.frameCount,
			"pc", fmt.Sprintf("0x%04X", e.cpu.PC()))
	}
}

// GetCurrentFrame returns the framebuffer. Only read it between frame steps.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.mmu.PPU().Framebuffer()
}

// TakeVideoDirty reports whether video memory changed since the last call.
func (e *Emulator) TakeVideoDirty() bool {
	return e.mmu.PPU().TakeDirty()
}

func (e *Emulator) HandleKeyPress(key memory.JoypadKey) {
	e.mmu.HandleKeyPress(key)
}

func (e *Emulator) HandleKeyRelease(key memory.JoypadKey) {
	e.mmu.HandleKeyRelease(key)
}

func (e *Emulator) GetInstructionCount() uint64 {
	return e.instructionCount
}

func (e *Emulator) GetFrameCount() uint64 {
	return e.frameCount
}

func (e *Emulator) GetMMU() *memory.MMU {
	return e.mmu
}
