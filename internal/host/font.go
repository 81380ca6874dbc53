package host

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Font is a fixed-width bitmap font texture used to render the debug HUD:
// disassembly, register dump, and log window. It is not used to draw
// anything inside the CHIP-8 framebuffer itself.
type Font struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewFont loads the bitmap font surface (magenta pixels treated as
// transparent) and uploads it as a renderer texture.
func NewFont(renderer *sdl.Renderer, bmpPath string) (*Font, error) {
	surface, err := sdl.LoadBMP(bmpPath)
	if err != nil {
		return nil, fmt.Errorf("host: load font bitmap: %w", err)
	}
	defer surface.Free()

	mask := sdl.MapRGB(surface.Format, 255, 0, 255)
	surface.SetColorKey(1, mask)

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("host: create font texture: %w", err)
	}

	return &Font{renderer: renderer, texture: texture}, nil
}

// DrawText renders s at (x, y) using the loaded font, one 7x7 glyph cell per
// character, skipping control characters and characters outside the font's
// printable ASCII range.
func (f *Font) DrawText(s string, x, y int) {
	src := sdl.Rect{W: 5, H: 7}
	dst := sdl.Rect{X: int32(x), Y: int32(y), W: 5, H: 7}

	for _, c := range s {
		if c > 32 && c < 94 {
			src.X = (c - 33) * 6
			f.renderer.Copy(f.texture, &src, &dst)
		}
		dst.X += 7
	}
}

// Destroy releases the underlying SDL texture.
func (f *Font) Destroy() {
	f.texture.Destroy()
}
