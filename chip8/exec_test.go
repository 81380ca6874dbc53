package chip8

import (
	"testing"

	"github.com/coreeight/chip8toolkit/isa"
	"github.com/stretchr/testify/require"
)

func step(t *testing.T, vm *VM) {
	t.Helper()
	require.NoError(t, vm.Step())
}

func TestAdd_OverflowSetsFlag(t *testing.T) {
	vm, err := NewVM([]byte{0x80, 0x14}) // ADD V0, V1
	require.NoError(t, err)
	vm.V[0] = 0xFF
	vm.V[1] = 0x01

	step(t, vm)
	require.Equal(t, uint8(0x00), vm.V[0])
	require.Equal(t, uint8(1), vm.V[isa.FlagReg])
}

func TestSub_BorrowClearsFlag(t *testing.T) {
	vm, err := NewVM([]byte{0x80, 0x15}) // SUB V0, V1
	require.NoError(t, err)
	vm.V[0] = 0x05
	vm.V[1] = 0x07

	step(t, vm)
	require.Equal(t, uint8(0xFE), vm.V[0])
	require.Equal(t, uint8(0), vm.V[isa.FlagReg])
}

func TestShr_IgnoresVy(t *testing.T) {
	// Open question #2: SHR reads/writes only Vx.
	vm, err := NewVM([]byte{0x80, 0x16}) // SHR V0 {, V1}
	require.NoError(t, err)
	vm.V[0] = 0x03
	vm.V[1] = 0xFF

	step(t, vm)
	require.Equal(t, uint8(0x01), vm.V[0])
	require.Equal(t, uint8(1), vm.V[isa.FlagReg])
	require.Equal(t, uint8(0xFF), vm.V[1], "Vy must be untouched")
}

func TestShl_IgnoresVy(t *testing.T) {
	vm, err := NewVM([]byte{0x80, 0x1E}) // SHL V0 {, V1}
	require.NoError(t, err)
	vm.V[0] = 0x81
	vm.V[1] = 0x00

	step(t, vm)
	require.Equal(t, uint8(0x02), vm.V[0])
	require.Equal(t, uint8(1), vm.V[isa.FlagReg])
}

func TestSkp_Sknp_NoKeyPressed(t *testing.T) {
	// Open question #3: SKP never skips, SKNP always skips, when Key==NONE.
	rom := []byte{0xE0, 0x9E, 0xE0, 0xA1}
	vm, err := NewVM(rom)
	require.NoError(t, err)
	vm.Key = isa.KeyNone

	step(t, vm)
	require.Equal(t, uint16(isa.ProgStart+2), vm.PC, "SKP must not skip")

	step(t, vm)
	require.Equal(t, uint16(isa.ProgStart+2+4), vm.PC, "SKNP must skip")
}

func TestFx55Fx65_DoNotIncrementI(t *testing.T) {
	// Open question #1: I is left unmodified by both store and load.
	rom := []byte{0xF1, 0x55, 0xF1, 0x65}
	vm, err := NewVM(rom)
	require.NoError(t, err)
	vm.I = 0x300
	vm.V[0] = 0x11
	vm.V[1] = 0x22

	step(t, vm)
	require.Equal(t, uint16(0x300), vm.I)
	require.Equal(t, uint8(0x11), vm.RAM[0x300])
	require.Equal(t, uint8(0x22), vm.RAM[0x301])

	vm.V[0], vm.V[1] = 0, 0
	step(t, vm)
	require.Equal(t, uint16(0x300), vm.I)
	require.Equal(t, uint8(0x11), vm.V[0])
	require.Equal(t, uint8(0x22), vm.V[1])
}

func TestLdB_BCD(t *testing.T) {
	vm, err := NewVM([]byte{0xF0, 0x33}) // LD B, V0
	require.NoError(t, err)
	vm.I = 0x300
	vm.V[0] = 234

	step(t, vm)
	require.Equal(t, uint8(2), vm.RAM[0x300])
	require.Equal(t, uint8(3), vm.RAM[0x301])
	require.Equal(t, uint8(4), vm.RAM[0x302])
}

func TestLdF_FontBase(t *testing.T) {
	vm, err := NewVM([]byte{0xF0, 0x29}) // LD F, V0
	require.NoError(t, err)
	vm.V[0] = 0xA

	step(t, vm)
	require.Equal(t, uint16(0xA*isa.FontGlyphHeight), vm.I)
}

func TestAddIV_NoOverflowFlag(t *testing.T) {
	vm, err := NewVM([]byte{0xF0, 0x1E}) // ADD I, V0
	require.NoError(t, err)
	vm.I = 0xFFFF
	vm.V[0] = 0x02
	before := vm.V[isa.FlagReg]

	step(t, vm)
	require.Equal(t, uint16(0x0001), vm.I)
	require.Equal(t, before, vm.V[isa.FlagReg], "ADD I, Vx must not touch VF")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for kind := isa.Kind(0); kind < isa.Kind(isa.NumKinds); kind++ {
		word := Encode(kind, 0x3, 0x5, 0x0AB)
		d := Decode(word)
		require.Equal(t, kind, d.Kind, "round-trip failed for %s", isa.Mnemonics[kind])
	}
}

func TestDecode_UnrecognisedIsIllegal(t *testing.T) {
	require.Equal(t, isa.Illegal, Decode(0x5001).Kind) // low nibble must be 0
	require.Equal(t, isa.Illegal, Decode(0x8008).Kind)
	require.Equal(t, isa.Illegal, Decode(0xE000).Kind)
	require.Equal(t, isa.Illegal, Decode(0xF000).Kind)
}
