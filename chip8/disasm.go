package chip8

import (
	"fmt"

	"github.com/coreeight/chip8toolkit/isa"
)

// Disassemble renders the instruction word at the given RAM address as
// mnemonic text, e.g. "DRW V1, V2, 5". It is used by the host's optional
// debug view and by round-trip tests against the assembler.
func (vm *VM) Disassemble(addr uint16) string {
	word := uint16(vm.RAM[int(addr)%isa.RAMSize])<<8 | uint16(vm.RAM[(int(addr)+1)%isa.RAMSize])
	return DisassembleWord(word)
}

// DisassembleWord renders a bare 16-bit instruction word as mnemonic text
// without requiring a VM instance.
func DisassembleWord(word uint16) string {
	d := Decode(word)
	if d.Kind == isa.Illegal {
		return fmt.Sprintf("ILLEGAL %#04x", word)
	}

	mnemonic := isa.Mnemonics[d.Kind]

	switch d.Kind {
	case isa.CLS, isa.RET:
		return mnemonic
	case isa.SysAddr, isa.JpAddr, isa.CallAddr:
		return fmt.Sprintf("%s %#03x", mnemonic, d.Addr)
	case isa.SeVB, isa.SneVB, isa.LdVB, isa.AddVB, isa.RndVB:
		return fmt.Sprintf("%s V%X, %#02x", mnemonic, d.Vx, d.Byte)
	case isa.SeVV, isa.LdVV, isa.OrVV, isa.AndVV, isa.XorVV, isa.AddVV, isa.SubVV, isa.SubnVV, isa.SneVV:
		return fmt.Sprintf("%s V%X, V%X", mnemonic, d.Vx, d.Vy)
	case isa.ShrV, isa.ShlV, isa.SkpV, isa.SknpV:
		return fmt.Sprintf("%s V%X", mnemonic, d.Vx)
	case isa.LdIAddr:
		return fmt.Sprintf("LD I, %#03x", d.Addr)
	case isa.JpV0Addr:
		return fmt.Sprintf("JP V0, %#03x", d.Addr)
	case isa.DrwVVN:
		return fmt.Sprintf("DRW V%X, V%X, %d", d.Vx, d.Vy, d.Nibble)
	case isa.LdVDT:
		return fmt.Sprintf("LD V%X, DT", d.Vx)
	case isa.LdVK:
		return fmt.Sprintf("LD V%X, K", d.Vx)
	case isa.LdDTV:
		return fmt.Sprintf("LD DT, V%X", d.Vx)
	case isa.LdSTV:
		return fmt.Sprintf("LD ST, V%X", d.Vx)
	case isa.AddIV:
		return fmt.Sprintf("ADD I, V%X", d.Vx)
	case isa.LdFV:
		return fmt.Sprintf("LD F, V%X", d.Vx)
	case isa.LdBV:
		return fmt.Sprintf("LD B, V%X", d.Vx)
	case isa.LdIMV:
		return fmt.Sprintf("LD [I], V%X", d.Vx)
	case isa.LdVIM:
		return fmt.Sprintf("LD V%X, [I]", d.Vx)
	default:
		return fmt.Sprintf("%#04x", word)
	}
}
