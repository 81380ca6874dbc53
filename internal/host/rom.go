package host

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

// MaxROMDialogBytes is a coarse upper bound on the size of a file
// OpenROMDialog accepts. The file is read in full before the check; the VM
// itself re-validates against isa.MaxROMBytes on Load.
const MaxROMDialogBytes = 1 << 20

// OpenROMDialog shows a native "Open ROM" file picker and returns the bytes
// of the chosen file. It returns a nil byte slice and nil error if the user
// cancels the dialog, matching massung's LoadDialog call site in main.go
// (F3 opens a file browser, ESC/cancel leaves the running ROM untouched).
func OpenROMDialog() ([]byte, string, error) {
	path, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "rom").Title("Open ROM").Load()
	if err != nil {
		if err == dialog.ErrCancelled {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("host: open ROM dialog: %w", err)
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("host: read ROM %s: %w", path, err)
	}
	if len(rom) > MaxROMDialogBytes {
		return nil, "", fmt.Errorf("host: %s is too large to be a CHIP-8 ROM", path)
	}

	return rom, path, nil
}
