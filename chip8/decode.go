package chip8

import "github.com/coreeight/chip8toolkit/isa"

// Decoded is the product of decoding one 16-bit opcode: its kind and every
// operand field the kind might need. Fields not used by Kind are left zero.
type Decoded struct {
	Kind   isa.Kind
	Word   uint16
	Addr   uint16
	Vx     uint8
	Vy     uint8
	Byte   uint8
	Nibble uint8
}

// Decode maps a 16-bit instruction word to its kind and operand fields.
// Dispatch is a switch on the high nibble with sub-dispatch for the 0x0,
// 0x8, 0xE and 0xF families, exactly as the architecture's opcode table
// groups them, and a check that 0x5xyN has N == 0. Unrecognised words
// decode to isa.Illegal.
func Decode(word uint16) Decoded {
	d := Decoded{
		Word:   word,
		Addr:   word & 0x0FFF,
		Vx:     uint8((word >> isa.VxOffset) & 0xF),
		Vy:     uint8((word >> isa.VyOffset) & 0xF),
		Byte:   uint8(word & 0x00FF),
		Nibble: uint8(word & 0x000F),
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			d.Kind = isa.CLS
		case 0x00EE:
			d.Kind = isa.RET
		default:
			d.Kind = isa.SysAddr
		}
	case 0x1:
		d.Kind = isa.JpAddr
	case 0x2:
		d.Kind = isa.CallAddr
	case 0x3:
		d.Kind = isa.SeVB
	case 0x4:
		d.Kind = isa.SneVB
	case 0x5:
		if d.Nibble == 0 {
			d.Kind = isa.SeVV
		} else {
			d.Kind = isa.Illegal
		}
	case 0x6:
		d.Kind = isa.LdVB
	case 0x7:
		d.Kind = isa.AddVB
	case 0x8:
		switch d.Nibble {
		case 0x0:
			d.Kind = isa.LdVV
		case 0x1:
			d.Kind = isa.OrVV
		case 0x2:
			d.Kind = isa.AndVV
		case 0x3:
			d.Kind = isa.XorVV
		case 0x4:
			d.Kind = isa.AddVV
		case 0x5:
			d.Kind = isa.SubVV
		case 0x6:
			d.Kind = isa.ShrV
		case 0x7:
			d.Kind = isa.SubnVV
		case 0xE:
			d.Kind = isa.ShlV
		default:
			d.Kind = isa.Illegal
		}
	case 0x9:
		d.Kind = isa.SneVV
	case 0xA:
		d.Kind = isa.LdIAddr
	case 0xB:
		d.Kind = isa.JpV0Addr
	case 0xC:
		d.Kind = isa.RndVB
	case 0xD:
		d.Kind = isa.DrwVVN
	case 0xE:
		switch d.Byte {
		case 0x9E:
			d.Kind = isa.SkpV
		case 0xA1:
			d.Kind = isa.SknpV
		default:
			d.Kind = isa.Illegal
		}
	case 0xF:
		switch d.Byte {
		case 0x07:
			d.Kind = isa.LdVDT
		case 0x0A:
			d.Kind = isa.LdVK
		case 0x15:
			d.Kind = isa.LdDTV
		case 0x18:
			d.Kind = isa.LdSTV
		case 0x1E:
			d.Kind = isa.AddIV
		case 0x29:
			d.Kind = isa.LdFV
		case 0x33:
			d.Kind = isa.LdBV
		case 0x55:
			d.Kind = isa.LdIMV
		case 0x65:
			d.Kind = isa.LdVIM
		default:
			d.Kind = isa.Illegal
		}
	default:
		d.Kind = isa.Illegal
	}

	return d
}

// Encode is the inverse of Decode for a given kind and operand set: the
// base opcode OR'd with only the operand fields that kind's format
// actually carries, in their canonical bit positions. Used by round-trip
// tests (spec testable property 2); the assembler's emitter ORs the operand
// fields into the base opcode itself.
func Encode(kind isa.Kind, vx, vy uint8, imm uint16) uint16 {
	word := isa.Opcodes[kind]

	switch kind {
	case isa.CLS, isa.RET:
		// No operand fields.

	case isa.SysAddr, isa.JpAddr, isa.CallAddr, isa.LdIAddr, isa.JpV0Addr:
		word |= imm & 0x0FFF

	case isa.SeVB, isa.SneVB, isa.LdVB, isa.AddVB, isa.RndVB:
		word |= uint16(vx&0xF) << isa.VxOffset
		word |= imm & 0x00FF

	case isa.SeVV, isa.LdVV, isa.OrVV, isa.AndVV, isa.XorVV, isa.AddVV,
		isa.SubVV, isa.SubnVV, isa.SneVV:
		word |= uint16(vx&0xF) << isa.VxOffset
		word |= uint16(vy&0xF) << isa.VyOffset

	case isa.DrwVVN:
		word |= uint16(vx&0xF) << isa.VxOffset
		word |= uint16(vy&0xF) << isa.VyOffset
		word |= imm & 0x000F

	default:
		// ShrV, ShlV, SkpV, SknpV, LdVDT, LdVK, LdDTV, LdSTV, AddIV, LdFV,
		// LdBV, LdIMV, LdVIM: Vx only.
		word |= uint16(vx&0xF) << isa.VxOffset
	}

	return word
}
