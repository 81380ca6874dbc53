package asm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func assembleOK(t *testing.T, src string) []byte {
	t.Helper()
	rom, diags := Assemble(src)
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	require.NotNil(t, rom)
	return rom
}

func TestAssemble_LoadImmediate(t *testing.T) {
	rom := assembleOK(t, "\tLD V0, 0x42\n")
	require.Equal(t, []byte{0x60, 0x42}, rom)
}

func TestAssemble_LabelAndJump(t *testing.T) {
	rom := assembleOK(t, "start:\n\tJP start\n")
	require.Equal(t, []byte{0x12, 0x00}, rom)
}

func TestAssemble_Draw(t *testing.T) {
	rom := assembleOK(t, "\tDRW V1, V2, 5\n")
	require.Equal(t, []byte{0xD1, 0x25}, rom)
}

func TestAssemble_Macro(t *testing.T) {
	rom := assembleOK(t, "%define BYTE 255\n\tLD V3, BYTE\n")
	require.Equal(t, []byte{0x63, 0xFF}, rom)
}

func TestAssemble_NegativeByteIsTwosComplement(t *testing.T) {
	rom := assembleOK(t, "\tLD V0, -1\n")
	require.Equal(t, []byte{0x60, 0xFF}, rom)
}

func TestAssemble_ForwardLabelResolvesToInstructionAddress(t *testing.T) {
	// A label on its own line, followed by an instruction on the next line,
	// resolves to that instruction's address (not the label statement,
	// which does not itself occupy any bytes).
	rom := assembleOK(t, "\tJP skip\nskip:\n\tCLS\n")
	require.Equal(t, []byte{0x12, 0x02, 0x00, 0xE0}, rom)
}

func TestAssemble_DuplicateLabelIsRejected(t *testing.T) {
	_, diags := Assemble("a:\n\tCLS\na:\n\tCLS\n")
	require.NotEmpty(t, diags)
}

func TestAssemble_LabelImmediatelyFollowingLabelIsRejected(t *testing.T) {
	_, diags := Assemble("a: b:\n")
	require.NotEmpty(t, diags)
}

func TestAssemble_UnresolvedLabelIsRejected(t *testing.T) {
	_, diags := Assemble("\tJP nowhere\n")
	require.NotEmpty(t, diags)
}

func TestAssemble_ImmediateOutOfRangeIsRejected(t *testing.T) {
	_, diags := Assemble("\tLD V0, 256\n")
	require.NotEmpty(t, diags)
}

func TestAssemble_ReservedMacroNameIsRejected(t *testing.T) {
	_, diags := Assemble("%define I 5\n")
	require.NotEmpty(t, diags)
}

func TestAssemble_ErrorBudgetAbortsWithoutEmission(t *testing.T) {
	src := ""
	for i := 0; i < errorLimit+2; i++ {
		src += "LD V0, 999\n" // each line: immediate out of range
	}
	rom, diags := Assemble(src)
	require.Nil(t, rom)
	require.LessOrEqual(t, len(diags), errorLimit+1)
	require.NotEmpty(t, diags)
}

func TestAssemble_ZeroEmissionOnAnyError(t *testing.T) {
	rom, diags := Assemble("\tLD V0, 0x1\n\tLD V1, 999\n")
	require.Nil(t, rom)
	require.NotEmpty(t, diags)
}

func TestAssemble_DbDirective(t *testing.T) {
	rom := assembleOK(t, "\tdb 0xAB\n\tdb 1\n")
	require.Equal(t, []byte{0xAB, 0x01}, rom)
}

func TestAssemble_CommentsAreIgnored(t *testing.T) {
	rom := assembleOK(t, "\tLD V0, 1 ; set V0\n")
	require.Equal(t, []byte{0x60, 0x01}, rom)
}

func TestAssemble_MacroExpansionDiagnosticCarriesOrigin(t *testing.T) {
	_, diags := Assemble("%define BAD 999\n\tLD V0, BAD\n")
	require.Len(t, diags, 1)
	require.True(t, diags[0].FromMacro)
	require.Equal(t, "BAD", diags[0].MacroName)
}

func TestAssemble_CaseInsensitiveMnemonicsAndRegisters(t *testing.T) {
	rom := assembleOK(t, "\tld v0, 0x1\n")
	require.Equal(t, []byte{0x60, 0x01}, rom)
}
