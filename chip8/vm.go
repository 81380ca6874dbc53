// Package chip8 implements the CHIP-8 interpreter core: opcode decoding,
// single-step execution, sprite blitting, and delay/sound timing. It knows
// nothing about windows, audio devices, or key polling; those live in
// internal/host and talk to a VM only through its exported fields and
// methods.
package chip8

import (
	"fmt"
	"time"

	"github.com/coreeight/chip8toolkit/isa"
)

// KeyNone is the sentinel a host reports for "no key pressed". Re-exported
// from isa so callers need only import chip8.
const KeyNone = isa.KeyNone

// VM holds the complete architectural state of one running program: general
// registers, the index/program counter/stack pointer, the call stack, RAM,
// the monochrome framebuffer, and the two time-domain timers. A VM is valid
// for stepping only if NewVM returned a nil error.
type VM struct {
	V  [isa.RegCount]uint8
	I  uint16
	PC uint16
	SP uint8

	Stack [isa.StackSize]uint16
	RAM   [isa.RAMSize]uint8

	// Screen is addressed Screen[y][x], one bool per pixel.
	Screen [isa.ScreenHeight][isa.ScreenWidth]bool

	// Delay and Sound are continuous, nonnegative counters decremented at
	// isa.TimerFreq units/sec. They are floats, not integers, so that a
	// host driving steps at an arbitrary frame rate never loses fractional
	// ticks to rounding.
	Delay float64
	Sound float64

	// Key is the host-observed key currently pressed, or KeyNone between
	// frames. The host writes this field between Step calls; the VM never
	// writes it except to leave it untouched.
	Key int

	waitForKey bool
	waitReg    uint8

	lastStep time.Time
	err      error
}

// NewVM constructs a VM with the given ROM loaded at isa.ProgStart and the
// font table preloaded at RAM offset 0. It returns an error (and a VM that
// refuses to step) if rom exceeds isa.MaxROMBytes.
func NewVM(rom []byte) (*VM, error) {
	vm := &VM{}
	if err := vm.Load(rom); err != nil {
		return vm, err
	}
	return vm, nil
}

// Load resets the VM and loads rom at isa.ProgStart. It is also how a host
// implements "reset": construct a fresh VM from the same ROM bytes, per
// spec's single-threaded reset-by-reconstruction model.
func (vm *VM) Load(rom []byte) error {
	if len(rom) > isa.MaxROMBytes {
		vm.err = fmt.Errorf("chip8: ROM of %d bytes exceeds maximum of %d", len(rom), isa.MaxROMBytes)
		return vm.err
	}

	*vm = VM{}

	for i, glyph := range isa.FontSprites {
		copy(vm.RAM[i*isa.FontGlyphHeight:], glyph[:])
	}

	copy(vm.RAM[isa.ProgStart:], rom)

	vm.PC = isa.ProgStart
	vm.Key = isa.KeyNone
	vm.ResetClock()

	return nil
}

// ResetClock re-samples the timer reference point to now, so a host that
// was paused does not see timers jump forward on resume.
func (vm *VM) ResetClock() {
	vm.lastStep = time.Now()
}

// Err returns the unrecoverable fault the VM encountered ("ROM too large"
// from Load, or an illegal instruction decoded by Step), or nil. A VM with
// a non-nil Err refuses to progress on Step.
func (vm *VM) Err() error {
	return vm.err
}

// SoundActive reports whether the sound timer is currently active. It is
// the only signal the audio engine is allowed to observe.
func (vm *VM) SoundActive() bool {
	return vm.Sound > 0
}

// PressKey and ReleaseKey let a host drive Key without reaching into the
// struct directly; they also make the "only one key is modeled at a time"
// policy explicit at the call site.
func (vm *VM) PressKey(key int) {
	vm.Key = key
}

func (vm *VM) ReleaseKey(key int) {
	if vm.Key == key {
		vm.Key = isa.KeyNone
	}
}
