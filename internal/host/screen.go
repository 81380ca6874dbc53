package host

import (
	"fmt"

	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/coreeight/chip8toolkit/isa"
	"github.com/veandco/go-sdl2/sdl"
)

// Screen is a render target holding the CHIP-8 framebuffer, redrawn from
// VM.Screen every frame and stretched to fit the main window on Copy.
type Screen struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewScreen creates the render target for the CHIP-8 video memory. It is
// sized to the interpreter's native 64x32 resolution; Copy does the
// stretch to whatever rectangle the caller wants on screen.
func NewScreen(renderer *sdl.Renderer) (*Screen, error) {
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, isa.ScreenWidth, isa.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("host: create screen texture: %w", err)
	}
	return &Screen{renderer: renderer, texture: texture}, nil
}

// Refresh redraws the texture from vm's current framebuffer.
func (s *Screen) Refresh(vm *chip8.VM) error {
	if err := s.renderer.SetRenderTarget(s.texture); err != nil {
		return fmt.Errorf("host: set render target: %w", err)
	}
	defer s.renderer.SetRenderTarget(nil)

	s.renderer.SetDrawColor(143, 145, 133, 255)
	s.renderer.Clear()

	s.renderer.SetDrawColor(17, 29, 43, 255)
	for y := 0; y < isa.ScreenHeight; y++ {
		for x := 0; x < isa.ScreenWidth; x++ {
			if vm.Screen[y][x] {
				s.renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	return nil
}

// Copy stretches the screen texture into the destination rectangle of the
// main window.
func (s *Screen) Copy(x, y, w, h int32) error {
	src := sdl.Rect{W: isa.ScreenWidth, H: isa.ScreenHeight}
	dst := sdl.Rect{X: x, Y: y, W: w, H: h}
	if err := s.renderer.Copy(s.texture, &src, &dst); err != nil {
		return fmt.Errorf("host: copy screen texture: %w", err)
	}
	return nil
}

// Destroy releases the underlying SDL texture.
func (s *Screen) Destroy() {
	s.texture.Destroy()
}
