package chip8

import (
	"testing"

	"github.com/coreeight/chip8toolkit/isa"
	"github.com/stretchr/testify/require"
)

func TestDrawSprite_WrapsBothAxes(t *testing.T) {
	vm, err := NewVM(nil)
	require.NoError(t, err)

	vm.I = 0x300
	vm.RAM[0x300] = 0xFF // row 0: all 8 pixels on
	vm.RAM[0x301] = 0xFF // row 1: all 8 pixels on

	collision := vm.drawSprite(63, 31, 2)
	require.False(t, collision, "blank screen: no pixel can transition 1->0")

	// Row 0 at y=31 wraps to y=(31+0)%32=31; row 1 wraps to y=(31+1)%32=0.
	for j := 0; j < 8; j++ {
		px := (63 + j) % isa.ScreenWidth
		require.True(t, vm.Screen[31][px], "row 0 column %d", j)
		require.True(t, vm.Screen[0][px], "row 1 column %d", j)
	}
}

func TestDrawSprite_CollisionOnlyOnOneToZero(t *testing.T) {
	vm, err := NewVM(nil)
	require.NoError(t, err)

	vm.I = 0x300
	vm.RAM[0x300] = 0x80 // single on-pixel at column 0

	require.False(t, vm.drawSprite(0, 0, 1))
	require.True(t, vm.Screen[0][0])

	// Drawing the same sprite again XORs the pixel back off: a collision.
	require.True(t, vm.drawSprite(0, 0, 1))
	require.False(t, vm.Screen[0][0])
}

func TestDrawSprite_FontGlyphZero(t *testing.T) {
	vm, err := NewVM([]byte{0xA0, 0x00, 0xD0, 0x05})
	require.NoError(t, err)
	// V0 = V1 = 0 by default; font glyph "0" lives at RAM[0:5].

	require.NoError(t, vm.Step()) // LD I, 0x000
	require.Equal(t, uint16(0), vm.I)
	require.NoError(t, vm.Step()) // DRW V0, V1, 5
	require.Equal(t, uint8(0), vm.V[isa.FlagReg])

	for i, row := range isa.FontSprites[0] {
		for j := 0; j < 8; j++ {
			want := row&(0x80>>j) != 0
			require.Equal(t, want, vm.Screen[i][j], "row %d col %d", i, j)
		}
	}
}
