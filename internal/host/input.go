package host

import (
	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// keyMap maps modern keyboard scancodes onto the CHIP-8's 16-key hex pad,
// the same QWERTY-to-COSMAC layout massung's input.go used.
var keyMap = map[sdl.Scancode]int{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

// Command is an app-level action requested through a non-key-pad scancode.
// The emulator loop decides what each one means; Input only recognizes them.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReset
	CommandReload
	CommandOpenROMDialog
	CommandTogglePause
	CommandSingleStep
	CommandHelp
	CommandLogScrollUp
	CommandLogScrollDown
	CommandLogHome
	CommandLogEnd
)

// Input pumps the SDL event queue, routing key-pad scancodes straight into
// the VM and surfacing everything else as Commands for the caller to act on.
type Input struct{}

// NewInput returns an Input ready to poll.
func NewInput() *Input {
	return &Input{}
}

// Poll drains all pending SDL events, applying key-pad presses/releases to
// vm directly and returning the app-level commands observed in order.
func (in *Input) Poll(vm *chip8.VM) []Command {
	var cmds []Command

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			cmds = append(cmds, CommandQuit)

		case *sdl.KeyDownEvent:
			if key, ok := keyMap[ev.Keysym.Scancode]; ok {
				vm.PressKey(key)
				continue
			}
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				cmds = append(cmds, CommandQuit)
			case sdl.SCANCODE_BACKSPACE:
				cmds = append(cmds, CommandReset)
			case sdl.SCANCODE_F2:
				cmds = append(cmds, CommandReload)
			case sdl.SCANCODE_F3:
				cmds = append(cmds, CommandOpenROMDialog)
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				cmds = append(cmds, CommandTogglePause)
			case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
				cmds = append(cmds, CommandSingleStep)
			case sdl.SCANCODE_H, sdl.SCANCODE_F1:
				cmds = append(cmds, CommandHelp)
			case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
				cmds = append(cmds, CommandLogScrollUp)
			case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
				cmds = append(cmds, CommandLogScrollDown)
			case sdl.SCANCODE_HOME:
				cmds = append(cmds, CommandLogHome)
			case sdl.SCANCODE_END:
				cmds = append(cmds, CommandLogEnd)
			}

		case *sdl.KeyUpEvent:
			if key, ok := keyMap[ev.Keysym.Scancode]; ok {
				vm.ReleaseKey(key)
			}
		}
	}

	return cmds
}
