package host

import (
	"fmt"

	"github.com/coreeight/chip8toolkit/asm"
	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// DebugView renders the disassembly window, register dump, and scrolling
// log panel massung's debug.go drew straight to stdout-captured text; here
// it reads vm's public fields and a Logger instead of a redirected os.Stdout.
type DebugView struct {
	renderer *sdl.Renderer
	font     *Font
	log      *Logger

	// address is the disassembly window's current top address; it is moved
	// to just before vm.PC whenever PC leaves the 16-instruction window,
	// mirroring massung's Address/tracking heuristic.
	address uint16
	paused  bool
}

// NewDebugView creates a DebugView backed by font for glyph rendering and
// log for the scrollable text window.
func NewDebugView(renderer *sdl.Renderer, font *Font, log *Logger) *DebugView {
	return &DebugView{renderer: renderer, font: font, log: log}
}

// SetPaused affects only the color used to highlight the current
// instruction in the disassembly window.
func (d *DebugView) SetPaused(paused bool) {
	d.paused = paused
}

// Disassembly renders 16 decoded instructions around vm.PC starting at
// (x, y), highlighting the instruction the program counter is on.
func (d *DebugView) Disassembly(vm *chip8.VM, x, y int) {
	if d.address+30 <= vm.PC || d.address >= vm.PC+2 || (d.address^vm.PC)&1 == 1 {
		d.address = vm.PC - 2
	}

	for i := 0; i < 32; i += 2 {
		addr := d.address + uint16(i)
		if addr == vm.PC {
			if d.paused {
				d.renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				d.renderer.SetDrawColor(57, 102, 176, 255)
			}
			d.renderer.FillRect(&sdl.Rect{
				X: int32(x),
				Y: int32(y+i*5) - 1,
				W: 200,
				H: 10,
			})
		}
		d.font.DrawText(vm.Disassemble(addr), x, y+i*5)
	}
}

// Registers renders all general registers plus PC/SP/I/DT/ST at (x, y).
func (d *DebugView) Registers(vm *chip8.VM, x, y int) {
	for i := 0; i < 16; i++ {
		d.font.DrawText(fmt.Sprintf("  V%X - #%02X", i, vm.V[i]), x, y+i*10)
	}

	rx := x + 98
	d.font.DrawText(fmt.Sprintf("PC - #%04X", vm.PC), rx, y)
	d.font.DrawText(fmt.Sprintf("SP - #%04X", vm.SP), rx, y+10)
	d.font.DrawText(fmt.Sprintf("I  - #%04X", vm.I), rx, y+30)
	d.font.DrawText(fmt.Sprintf("DT - #%02X", int(vm.Delay)), rx, y+50)
	d.font.DrawText(fmt.Sprintf("ST - #%02X", int(vm.Sound)), rx, y+60)
}

// Log renders up to 16 lines of the attached Logger's scroll window at
// (x, y), one every 10 pixels, truncating long lines.
func (d *DebugView) Log(x, y int) {
	for _, line := range d.log.Window(16) {
		if len(line) >= 45 {
			line = line[:42] + "..."
		}
		d.font.DrawText(line, x, y)
		y += 10
	}
}

// LogAssemblyErrors appends a header and one line per assembler diagnostic
// to the log window.
func (d *DebugView) LogAssemblyErrors(diags []asm.Diagnostic) {
	d.log.Logln("Assembly errors:")
	for _, diag := range diags {
		d.log.Log(diag.String())
	}
}
