package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pgray/ohboy/ohboy"
	"github.com/pgray/ohboy/ohboy/render"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "ohboy"
	app.Description = "A simple gameboy emulator"
	app.Usage = "ohboy [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	if c.Bool("headless") {
		return runHeadless(c, romPath)
	}

	emu, err := ohboy.NewWithFile(romPath)
	if err != nil {
		return err
	}

	renderer, err := render.NewTerminalRenderer(emu)
	if err != nil {
		return err
	}
	return renderer.Run()
}

func runHeadless(c *cli.Context, romPath string) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames option with a positive value")
	}

	snapshotInterval := c.Int("snapshot-interval")
	snapshotDir := c.String("snapshot-dir")

	if snapshotInterval > 0 {
		if snapshotDir == "" {
			tempDir, err := os.MkdirTemp("", "ohboy-snapshots-*")
			if err != nil {
				return fmt.Errorf("creating snapshot directory: %w", err)
			}
			snapshotDir = tempDir
		} else if err := os.MkdirAll(snapshotDir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))

	slog.Info("Running headless mode",
		"frames", frames,
		"snapshot_interval", snapshotInterval,
		"snapshot_dir", snapshotDir)

	emu, err := ohboy.NewWithFile(romPath)
	if err != nil {
		return err
	}

	for i := 1; i <= frames; i++ {
		emu.RunUntilFrame()

		if snapshotInterval > 0 && i%snapshotInterval == 0 {
			path := filepath.Join(snapshotDir, fmt.Sprintf("%s_frame_%d.txt", romName, i))
			if err := saveFrameSnapshot(emu, path); err != nil {
				slog.Error("Failed to save snapshot", "frame", i, "path", path, "error", err)
			} else {
				slog.Info("Saved frame snapshot", "frame", i, "path", path)
			}
		}

		if i%10 == 0 {
			slog.Info("Frame progress", "completed", i, "total", frames)
		}
	}

	slog.Info("Headless execution completed", "frames", frames)
	return nil
}

// saveFrameSnapshot writes the current frame as half-block text.
func saveFrameSnapshot(emu *ohboy.Emulator, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# Frame: %d, Instructions: %d\n", emu.GetFrameCount(), emu.GetInstructionCount())
	for _, line := range render.RenderFrameToHalfBlocks(emu.GetCurrentFrame()) {
		fmt.Fprintln(file, line)
	}

	return nil
}
