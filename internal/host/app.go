package host

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/coreeight/chip8toolkit/isa"
	"github.com/veandco/go-sdl2/sdl"
)

// App owns the SDL window and every host subsystem wired to one running VM.
// It is the Go-idiomatic replacement for massung's main.go package-level
// vars (VM, Window, Renderer, Paused, ...): one value instead of globals.
type App struct {
	vm     *chip8.VM
	window *sdl.Window
	render *sdl.Renderer

	screen *Screen
	audio  *Audio
	input  *Input
	font   *Font
	debug  *DebugView
	log    *Logger

	log2 *slog.Logger

	paused   bool
	romPath  string
	assetDir string
}

// NewApp initializes SDL, the window, and every host subsystem for vm. The
// caller retains ownership of vm so it can reload/reset it independently of
// the host (backspace and F3 reconstruct or replace the VM in place; Run
// takes no action on the F2 reload command Input reports).
func NewApp(vm *chip8.VM, romPath, assetDir string, slogger *slog.Logger) (*App, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("host: init SDL: %w", err)
	}

	flags := sdl.WINDOW_OPENGL
	window, renderer, err := sdl.CreateWindowAndRenderer(550, 348, uint32(flags))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("host: create window: %w", err)
	}
	window.SetTitle("CHIP-8 — " + filepath.Base(romPath))

	a := &App{
		vm:       vm,
		window:   window,
		render:   renderer,
		input:    NewInput(),
		log:      NewLogger(),
		log2:     slogger,
		romPath:  romPath,
		assetDir: assetDir,
	}

	if a.screen, err = NewScreen(renderer); err != nil {
		a.Close()
		return nil, err
	}
	if a.audio, err = NewAudio(); err != nil {
		a.Close()
		return nil, err
	}
	if a.font, err = NewFont(renderer, filepath.Join(assetDir, "font.bmp")); err != nil {
		a.Close()
		return nil, err
	}
	a.debug = NewDebugView(renderer, a.font, a.log)

	return a, nil
}

// Close tears down every subsystem App opened, in reverse order.
func (a *App) Close() {
	if a.font != nil {
		a.font.Destroy()
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.screen != nil {
		a.screen.Destroy()
	}
	if a.render != nil {
		a.render.Destroy()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	sdl.Quit()
}

// Run drives the event/step/render loop until the user quits. It steps the
// VM on a fast ticker and redraws on a 60Hz ticker, exactly massung's
// main.go cadence (3ms CPU ticks, 1/60s video ticks).
func (a *App) Run() error {
	clock := time.NewTicker(3 * time.Millisecond)
	defer clock.Stop()
	video := time.NewTicker(time.Second / isa60Hz)
	defer video.Stop()

	a.vm.ResetClock()

	for {
		for _, cmd := range a.input.Poll(a.vm) {
			switch cmd {
			case CommandQuit:
				return nil
			case CommandReset:
				rom := a.currentROM()
				if err := a.vm.Load(rom); err != nil {
					a.log2.Error("reset failed", "error", err)
				}
			case CommandTogglePause:
				a.paused = !a.paused
				a.debug.SetPaused(a.paused)
			case CommandSingleStep:
				if a.paused {
					if err := a.vm.Step(); err != nil {
						a.log2.Warn("step fault", "error", err)
					}
				}
			case CommandOpenROMDialog:
				rom, path, err := OpenROMDialog()
				if err != nil {
					a.log2.Error("open ROM", "error", err)
				} else if rom != nil {
					if err := a.vm.Load(rom); err != nil {
						a.log2.Error("load ROM", "path", path, "error", err)
					} else {
						a.romPath = path
						a.window.SetTitle("CHIP-8 — " + filepath.Base(path))
					}
				}
			case CommandLogScrollUp:
				a.log.ScrollUp()
			case CommandLogScrollDown:
				a.log.ScrollDown(16)
			case CommandLogHome:
				a.log.Home()
			case CommandLogEnd:
				a.log.End()
			case CommandHelp:
				a.log.Logln("Keys: 1-4 Q-R A-F Z-V  |  ESC quit  BkSp reset  F3 open  F5 pause  F10 step")
			}
		}

		select {
		case <-video.C:
			if err := a.redraw(); err != nil {
				return err
			}
		case <-clock.C:
			if !a.paused {
				if err := a.vm.Step(); err != nil {
					a.log2.Warn("halted on illegal instruction", "error", err)
					a.paused = true
				}
			}
		}
	}
}

// currentROM re-reads the VM's program region so Reset can reconstruct a
// fresh VM from the same bytes, per the single-threaded
// reset-by-reconstruction model chip8.VM.Load documents.
func (a *App) currentROM() []byte {
	return append([]byte(nil), a.vm.RAM[isa.ProgStart:]...)
}

const isa60Hz = 60

func (a *App) redraw() error {
	if err := a.audio.Update(a.vm); err != nil {
		return err
	}

	a.render.SetDrawColor(32, 42, 53, 255)
	a.render.Clear()

	frame(a.render, 8, 8, 322, 162)
	frame(a.render, 338, 8, 204, 162)
	frame(a.render, 8, 176, 146, 164)

	if err := a.screen.Refresh(a.vm); err != nil {
		return err
	}
	a.screen.Copy(10, 10, 322-20, 162-20)

	a.debug.Disassembly(a.vm, 342, 12)
	a.debug.Registers(a.vm, 12, 180)
	a.debug.Log(166, 176)

	a.render.Present()
	return nil
}

func frame(r *sdl.Renderer, x, y, w, h int32) {
	r.SetDrawColor(0, 0, 0, 255)
	r.DrawLine(x, y, x+w, y)
	r.DrawLine(x, y, x, y+h)

	r.SetDrawColor(95, 112, 120, 255)
	r.DrawLine(x+w, y, x+w, y+h)
	r.DrawLine(x, y+h, x+w, y+h)
}
