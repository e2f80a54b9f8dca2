package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pgray/ohboy/ohboy"
	"github.com/pgray/ohboy/ohboy/memory"
	"github.com/pgray/ohboy/ohboy/video"
)

const (
	frameTime = time.Second / 60
	// terminals report key presses but not releases, so a pressed key is
	// held down for this long before it is released
	keyHoldTime = 150 * time.Millisecond
)

// shadeColors maps a palette index to a terminal color.
var shadeColors = [4]tcell.Color{
	tcell.NewRGBColor(0xFF, 0xFF, 0xFF),
	tcell.NewRGBColor(0xAA, 0xAA, 0xAA),
	tcell.NewRGBColor(0x55, 0x55, 0x55),
	tcell.NewRGBColor(0x00, 0x00, 0x00),
}

type keyEvent struct {
	key  memory.JoypadKey
	quit bool
}

// TerminalRenderer displays the framebuffer in the terminal using half-block
// characters, one text row per two scanlines, and feeds key presses back to
// the joypad.
type TerminalRenderer struct {
	screen   tcell.Screen
	emulator *ohboy.Emulator
	events   chan keyEvent
	held     map[memory.JoypadKey]time.Time
	running  bool
}

func NewTerminalRenderer(emu *ohboy.Emulator) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	return &TerminalRenderer{
		screen:   screen,
		emulator: emu,
		events:   make(chan keyEvent, 16),
		held:     map[memory.JoypadKey]time.Time{},
		running:  true,
	}, nil
}

// Run drives the emulator at 60 frames per second until the user quits.
func (t *TerminalRenderer) Run() error {
	defer t.screen.Fini()

	t.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	t.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go t.pollInput()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for t.running {
		select {
		case <-ticker.C:
			t.drainEvents()
			t.releaseStaleKeys()
			t.emulator.RunUntilFrame()
			t.draw()
			t.screen.Show()
		case <-signals:
			slog.Info("Received signal to stop")
			t.running = false
		}
	}

	return nil
}

// pollInput translates tcell key events and posts them to the frame loop.
func (t *TerminalRenderer) pollInput() {
	for {
		ev := t.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.events <- keyEvent{quit: true}
			return
		case tcell.KeyUp:
			t.events <- keyEvent{key: memory.JoypadUp}
		case tcell.KeyDown:
			t.events <- keyEvent{key: memory.JoypadDown}
		case tcell.KeyLeft:
			t.events <- keyEvent{key: memory.JoypadLeft}
		case tcell.KeyRight:
			t.events <- keyEvent{key: memory.JoypadRight}
		case tcell.KeyEnter:
			t.events <- keyEvent{key: memory.JoypadStart}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			t.events <- keyEvent{key: memory.JoypadSelect}
		case tcell.KeyRune:
			switch key.Rune() {
			case 'z', 'Z':
				t.events <- keyEvent{key: memory.JoypadA}
			case 'x', 'X':
				t.events <- keyEvent{key: memory.JoypadB}
			}
		}
	}
}

func (t *TerminalRenderer) drainEvents() {
	for {
		select {
		case ev := <-t.events:
			if ev.quit {
				t.running = false
				return
			}
			t.emulator.HandleKeyPress(ev.key)
			t.held[ev.key] = time.Now()
		default:
			return
		}
	}
}

func (t *TerminalRenderer) releaseStaleKeys() {
	now := time.Now()
	for key, pressedAt := range t.held {
		if now.Sub(pressedAt) >= keyHoldTime {
			t.emulator.HandleKeyRelease(key)
			delete(t.held, key)
		}
	}
}

func (t *TerminalRenderer) draw() {
	fb := t.emulator.GetCurrentFrame()
	for y := 0; y < video.FramebufferHeight; y += 2 {
		for x := 0; x < video.FramebufferWidth; x++ {
			style := tcell.StyleDefault.
				Foreground(shadeColors[fb.GetPixel(x, y)]).
				Background(shadeColors[fb.GetPixel(x, y+1)])
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}
