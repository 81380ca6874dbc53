package chip8

import (
	"testing"

	"github.com/coreeight/chip8toolkit/isa"
	"github.com/stretchr/testify/require"
)

func TestNewVM_LoadsFontAndROM(t *testing.T) {
	rom := []byte{0x60, 0x0A, 0x61, 0x14}
	vm, err := NewVM(rom)
	require.NoError(t, err)
	require.Nil(t, vm.Err())

	require.Equal(t, uint16(isa.ProgStart), vm.PC)
	require.Equal(t, rom, vm.RAM[isa.ProgStart:isa.ProgStart+len(rom)])
	require.Equal(t, isa.FontSprites[0][:], vm.RAM[0:isa.FontGlyphHeight])
	require.Equal(t, isa.KeyNone, vm.Key)
}

func TestNewVM_RejectsOversizeROM(t *testing.T) {
	rom := make([]byte, isa.MaxROMBytes+1)
	vm, err := NewVM(rom)
	require.Error(t, err)
	require.Same(t, err, vm.Err())
}

func TestStep_AutoAdvancesPC(t *testing.T) {
	vm, err := NewVM([]byte{0x60, 0x0A})
	require.NoError(t, err)

	require.NoError(t, vm.Step())
	require.Equal(t, uint16(isa.ProgStart+2), vm.PC)
	require.Equal(t, uint8(0x0A), vm.V[0])
}

func TestStep_IllegalHaltsProgress(t *testing.T) {
	vm, err := NewVM([]byte{0x80, 0x08})
	require.NoError(t, err)

	stepErr := vm.Step()
	require.Error(t, stepErr)
	require.Equal(t, uint16(isa.ProgStart), vm.PC)

	// Further steps keep returning the same fault without moving PC.
	require.Equal(t, stepErr, vm.Step())
	require.Equal(t, uint16(isa.ProgStart), vm.PC)
}

func TestStep_CallAndRet(t *testing.T) {
	// 0x200: CALL 0x206 ; 0x202: (unreached) ; 0x206: RET
	rom := []byte{0x22, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0xEE}
	vm, err := NewVM(rom)
	require.NoError(t, err)

	require.NoError(t, vm.Step())
	require.Equal(t, uint16(0x206), vm.PC)
	require.Equal(t, uint8(1), vm.SP)
	require.Equal(t, uint16(0x202), vm.Stack[0])

	require.NoError(t, vm.Step())
	require.Equal(t, uint16(0x202), vm.PC)
	require.Equal(t, uint8(0), vm.SP)
}

func TestStep_WaitForKeyLatches(t *testing.T) {
	vm, err := NewVM([]byte{0xF0, 0x0A})
	require.NoError(t, err)

	require.NoError(t, vm.Step())
	require.True(t, vm.waitForKey)
	require.Equal(t, uint16(isa.ProgStart), vm.PC, "PC must not advance while waiting")

	vm.PressKey(0x7)
	require.NoError(t, vm.Step())
	require.False(t, vm.waitForKey)
	require.Equal(t, uint8(0x7), vm.V[0])
	require.Equal(t, uint16(isa.ProgStart+2), vm.PC)
}

func TestSoundActive(t *testing.T) {
	vm, err := NewVM(nil)
	require.NoError(t, err)
	require.False(t, vm.SoundActive())
	vm.Sound = 3
	require.True(t, vm.SoundActive())
}
