// Command c8emu runs a CHIP-8 ROM, either interactively in an SDL2 window
// or headlessly for a fixed number of steps (used in CI and for smoke
// testing ROMs without a display).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/coreeight/chip8toolkit/internal/host"
	"github.com/spf13/cobra"
)

var (
	headless bool
	speed    int
	assetDir string
)

var rootCmd = &cobra.Command{
	Use:   "c8emu rom-path",
	Short: "Run a CHIP-8 ROM",
	Long: `c8emu loads a CHIP-8 ROM and runs it. By default it opens an SDL2
window with the standard CHIP-8 hex keypad mapped to 1234/QWER/ASDF/ZXCV,
a disassembly/register debug HUD, and a single-tone beep gated on the
sound timer.

With --headless, no window is created; the interpreter instead runs for
a fixed number of steps and exits, printing whether it halted on an
illegal instruction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		romPath := args[0]

		rom, err := os.ReadFile(romPath)
		if err != nil {
			return fmt.Errorf("c8emu: read %s: %w", romPath, err)
		}

		vm, err := chip8.NewVM(rom)
		if err != nil {
			return fmt.Errorf("c8emu: %w", err)
		}

		if headless {
			return runHeadless(vm, logger)
		}
		return runInteractive(vm, romPath, logger)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without opening a window")
	rootCmd.Flags().IntVar(&speed, "speed", 1000, "headless steps per simulated 1/60s frame")
	rootCmd.Flags().StringVar(&assetDir, "asset-dir", "data", "directory holding font.bmp and other HUD assets")
}

func runHeadless(vm *chip8.VM, logger *slog.Logger) error {
	const frames = 600 // 10 simulated seconds at 60Hz
	for f := 0; f < frames; f++ {
		for i := 0; i < speed; i++ {
			if err := vm.Step(); err != nil {
				logger.Warn("halted", "frame", f, "pc", fmt.Sprintf("%#04x", vm.PC), "error", err)
				return nil
			}
		}
	}
	logger.Info("ran to completion without fault", "frames", frames)
	return nil
}

func runInteractive(vm *chip8.VM, romPath string, logger *slog.Logger) error {
	app, err := host.NewApp(vm, romPath, assetDir, logger)
	if err != nil {
		return fmt.Errorf("c8emu: %w", err)
	}
	defer app.Close()

	start := time.Now()
	logger.Debug("starting interactive session", "rom", romPath)
	err = app.Run()
	logger.Debug("session ended", "ran_for", time.Since(start))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
