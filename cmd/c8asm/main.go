// Command c8asm assembles a CHIP-8 source file into a raw ROM image.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/coreeight/chip8toolkit/asm"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "c8asm infile outfile",
	Short: "Assemble a CHIP-8 source file into a ROM image",
	Long: `c8asm reads a CHIP-8 assembly source file, assembles it into a raw
binary ROM suitable for c8emu, and writes it to outfile.

Assembly is all-or-nothing: if any line fails to parse or any operand is
out of range, no bytes are written and every diagnostic collected (up to
the fixed error budget) is printed to stderr.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		infile, outfile := args[0], args[1]

		src, err := os.ReadFile(infile)
		if err != nil {
			return fmt.Errorf("c8asm: read %s: %w", infile, err)
		}

		logger.Debug("assembling", "infile", infile, "bytes", len(src))

		rom, diags := asm.Assemble(string(src))
		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Fprintln(os.Stderr, d.String())
			}
			return fmt.Errorf("c8asm: %d error(s) in %s", len(diags), infile)
		}

		if err := os.WriteFile(outfile, rom, 0o644); err != nil {
			return fmt.Errorf("c8asm: write %s: %w", outfile, err)
		}

		logger.Info("assembled", "outfile", outfile, "bytes", len(rom))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
