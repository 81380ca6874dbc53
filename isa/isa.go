// Package isa holds the constants and instruction table shared by the
// assembler and the interpreter. Neither program is the authority for CHIP-8
// encoding; this package is, so the two can never drift.
package isa

// Memory and register layout. Every field here is load-bearing for both
// the assembler (operand range checks) and the interpreter (wrap-around
// addressing).
const (
	RAMSize      = 0x1000
	ProgStart    = 0x200
	MaxROMBytes  = RAMSize - ProgStart
	StackSize    = 16
	RegCount     = 16
	FlagReg      = 0xF
	ScreenWidth  = 64
	ScreenHeight = 32

	InstructionLen = 2

	// Nibble offsets of the Vx/Vy operand fields within a 16-bit opcode.
	VxOffset = 8
	VyOffset = 4

	FontGlyphHeight = 5
	FontGlyphCount  = 16

	// KeyNone is the sentinel "no key pressed" value a host reports between
	// frames. Valid CHIP-8 keys are 0x0..0xF.
	KeyNone = 16

	// TimerFreq is the rate (Hz) at which DT and ST count down.
	TimerFreq = 60
)
