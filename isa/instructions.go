package isa

// Kind names one of the 35 encodable CHIP-8 instructions, or Illegal for any
// 16-bit word the decoder does not recognize. The zero value is CLS; callers
// that need a "no instruction yet" sentinel should compare against Illegal
// explicitly rather than relying on the zero value.
type Kind int

const (
	CLS Kind = iota
	RET
	SysAddr
	JpAddr
	CallAddr
	SeVB
	SneVB
	SeVV
	LdVB
	AddVB
	LdVV
	OrVV
	AndVV
	XorVV
	AddVV
	SubVV
	ShrV
	SubnVV
	ShlV
	SneVV
	LdIAddr
	JpV0Addr
	RndVB
	DrwVVN
	SkpV
	SknpV
	LdVDT
	LdVK
	LdDTV
	LdSTV
	AddIV
	LdFV
	LdBV
	LdIMV
	LdVIM
	Illegal
)

// NumKinds is the count of encodable instructions, excluding Illegal.
const NumKinds = int(Illegal)

// Mnemonics holds the printable mnemonic for each Kind, ordered to match the
// Kind enum. Several instructions share a mnemonic (e.g. LD) and are
// distinguished only by their operand shapes.
var Mnemonics = [NumKinds]string{
	CLS: "CLS", RET: "RET", SysAddr: "SYS", JpAddr: "JP", CallAddr: "CALL",
	SeVB: "SE", SneVB: "SNE", SeVV: "SE", LdVB: "LD", AddVB: "ADD",
	LdVV: "LD", OrVV: "OR", AndVV: "AND", XorVV: "XOR", AddVV: "ADD",
	SubVV: "SUB", ShrV: "SHR", SubnVV: "SUBN", ShlV: "SHL", SneVV: "SNE",
	LdIAddr: "LD", JpV0Addr: "JP", RndVB: "RND", DrwVVN: "DRW", SkpV: "SKP",
	SknpV: "SKNP", LdVDT: "LD", LdVK: "LD", LdDTV: "LD", LdSTV: "LD",
	AddIV: "ADD", LdFV: "LD", LdBV: "LD", LdIMV: "LD", LdVIM: "LD",
}

// OperandFormats holds the canonical rule text for each Kind: the mnemonic
// followed by its operand atoms, using the rule matcher's shorthand
// ('v' = register, 'a' = address, 'b' = byte, 'n' = nibble). The rule
// matcher lexes these strings into atom sequences each time one is built;
// see asm.NewRuleMatcher.
var OperandFormats = [NumKinds]string{
	CLS:      "CLS",
	RET:      "RET",
	SysAddr:  "SYS a",
	JpAddr:   "JP a",
	CallAddr: "CALL a",
	SeVB:     "SE v, b",
	SneVB:    "SNE v, b",
	SeVV:     "SE v, v",
	LdVB:     "LD v, b",
	AddVB:    "ADD v, b",
	LdVV:     "LD v, v",
	OrVV:     "OR v, v",
	AndVV:    "AND v, v",
	XorVV:    "XOR v, v",
	AddVV:    "ADD v, v",
	SubVV:    "SUB v, v",
	ShrV:     "SHR v",
	SubnVV:   "SUBN v, v",
	ShlV:     "SHL v",
	SneVV:    "SNE v, v",
	LdIAddr:  "LD I, a",
	JpV0Addr: "JP V0, a",
	RndVB:    "RND v, b",
	DrwVVN:   "DRW v, v, n",
	SkpV:     "SKP v",
	SknpV:    "SKNP v",
	LdVDT:    "LD v, DT",
	LdVK:     "LD v, K",
	LdDTV:    "LD DT, v",
	LdSTV:    "LD ST, v",
	AddIV:    "ADD I, v",
	LdFV:     "LD F, v",
	LdBV:     "LD B, v",
	LdIMV:    "LD [I], v",
	LdVIM:    "LD v, [I]",
}

// Opcodes holds the base opcode for each Kind, with every operand field
// zeroed. Encoding a statement is: base | (vx << VxOffset) | (vy << VyOffset)
// | immediate. Decoding masks the appropriate bits back out; see
// chip8.Decode and spec.md §8 testable property 2.
var Opcodes = [NumKinds]uint16{
	CLS: 0x00E0, RET: 0x00EE, SysAddr: 0x0000, JpAddr: 0x1000, CallAddr: 0x2000,
	SeVB: 0x3000, SneVB: 0x4000, SeVV: 0x5000, LdVB: 0x6000, AddVB: 0x7000,
	LdVV: 0x8000, OrVV: 0x8001, AndVV: 0x8002, XorVV: 0x8003, AddVV: 0x8004,
	SubVV: 0x8005, ShrV: 0x8006, SubnVV: 0x8007, ShlV: 0x800E, SneVV: 0x9000,
	LdIAddr: 0xA000, JpV0Addr: 0xB000, RndVB: 0xC000, DrwVVN: 0xD000, SkpV: 0xE09E,
	SknpV: 0xE0A1, LdVDT: 0xF007, LdVK: 0xF00A, LdDTV: 0xF015, LdSTV: 0xF018,
	AddIV: 0xF01E, LdFV: 0xF029, LdBV: 0xF033, LdIMV: 0xF055, LdVIM: 0xF065,
}
