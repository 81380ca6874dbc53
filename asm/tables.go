package asm

import (
	"strings"

	"github.com/coreeight/chip8toolkit/isa"
)

// specialRegisters are the non-indexed register names the lexer must
// recognize besides V0..VF.
var specialRegisters = [...]string{"I", "DT", "ST", "K", "F", "B"}

// instructionMnemonics is the deduplicated set of mnemonics across all 35
// instruction formats (several kinds share a mnemonic, e.g. LD).
var instructionMnemonics = buildMnemonicSet()

func buildMnemonicSet() map[string]struct{} {
	set := make(map[string]struct{}, isa.NumKinds)
	for _, m := range isa.Mnemonics {
		set[strings.ToUpper(m)] = struct{}{}
	}
	return set
}

func icaseEquals(a, b string) bool {
	return strings.EqualFold(a, b)
}

// registerIndex returns the 0-15 index for a register lexeme like "V0" or
// "vF", or -1 if it does not name a register.
func registerIndex(lexeme string) int {
	if len(lexeme) != 2 || (lexeme[0] != 'V' && lexeme[0] != 'v') {
		return -1
	}
	c := lexeme[1]
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

func isSpecialRegister(lexeme string) bool {
	for _, s := range specialRegisters {
		if icaseEquals(s, lexeme) {
			return true
		}
	}
	return false
}

func isInstructionMnemonic(lexeme string) bool {
	_, ok := instructionMnemonics[strings.ToUpper(lexeme)]
	return ok
}

// isReservedName reports whether lexeme is a name a label or macro name may
// never equal, mirroring the original assembler's is_reserved_name check:
// "db", a special register name, an instruction mnemonic, or a register
// name V0..VF (spec.md §3's "no collision with mnemonic, register name,
// special register name, or directive name" invariant, made concrete).
func isReservedName(lexeme string) bool {
	if icaseEquals(lexeme, "db") {
		return true
	}
	if isSpecialRegister(lexeme) {
		return true
	}
	if isInstructionMnemonic(lexeme) {
		return true
	}
	return registerIndex(lexeme) >= 0
}
