// Package asm implements the CHIP-8 assembler front end: a lexer with
// single-level textual macro expansion, a declarative rule matcher over the
// 35 instruction formats, and a two-pass parser/emitter with a bounded
// error budget.
package asm

import "strconv"

// Kind classifies one lexical token.
type Kind int

const (
	Invalid Kind = iota
	Db
	Define
	Instruction
	Register
	SpecialRegister
	Identifier
	Immediate
	Char
	Raw
	Eof
)

var kindNames = [...]string{
	Invalid: "Invalid", Db: "Db", Define: "Define", Instruction: "Instruction",
	Register: "Register", SpecialRegister: "SpecialRegister", Identifier: "Identifier",
	Immediate: "Immediate", Char: "Char", Raw: "Raw", Eof: "Eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Position is a 1-based line/column pair, tracked by the lexer for every
// emitted token.
type Position struct {
	Line   uint
	Column uint
}

// Token is one lexical unit: its classification, the source slice that
// produced it, its position, and (for Register/Immediate tokens) an
// integer value. Origin points at the Macro whose expansion produced this
// token, or nil for tokens read directly from source.
type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Position
	Value  int
	Origin *Macro
}

// Valid reports whether t is neither Eof nor Invalid — the boolean
// conversion the original source gives every token.
func (t Token) Valid() bool {
	return t.Kind != Eof && t.Kind != Invalid
}

// debug renders a token for diagnostic messages, e.g. "[Register, 3]" or
// "[Identifier, 'start']".
func (t Token) debug(useValue bool) string {
	if !useValue {
		return "[" + t.Kind.String() + "]"
	}

	switch t.Kind {
	case Char:
		if t.Value >= 0x20 && t.Value < 0x7F {
			return "[Char, '" + string(rune(t.Value)) + "']"
		}
		fallthrough
	case Immediate, Register, SpecialRegister:
		return "[" + t.Kind.String() + ", " + strconv.Itoa(t.Value) + "]"
	case Identifier:
		return "[Identifier, '" + t.Lexeme + "']"
	default:
		return "[" + t.Kind.String() + "]"
	}
}
