package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/coreeight/chip8toolkit/isa"
)

// Step advances the VM by one instruction. It first decrements both timers
// by the wall-clock delta since the previous Step (scaled to 60 units/sec,
// clamped at zero), then either services the wait-for-key latch or
// fetches, decodes and executes one instruction. It returns a non-nil error
// when the fetched word decodes to isa.Illegal; the VM does not
// advance PC in that case, matching "the executor halts progress on
// ILLEGAL". Once a fault is recorded (that one, or a failed Load), every
// later Step returns it again without doing anything else.
func (vm *VM) Step() error {
	if vm.err != nil {
		return vm.err
	}

	now := time.Now()
	elapsed := now.Sub(vm.lastStep).Seconds()
	vm.lastStep = now
	vm.updateTimers(elapsed)

	if vm.waitForKey {
		if vm.Key == isa.KeyNone {
			return nil
		}
		vm.V[vm.waitReg] = uint8(vm.Key)
		vm.waitForKey = false
		vm.PC += isa.InstructionLen
		return nil
	}

	word := uint16(vm.RAM[int(vm.PC)%isa.RAMSize])<<8 | uint16(vm.RAM[(int(vm.PC)+1)%isa.RAMSize])
	d := Decode(word)

	if d.Kind == isa.Illegal {
		vm.err = fmt.Errorf("chip8: illegal instruction %#04x at %#04x", word, vm.PC)
		return vm.err
	}

	setsPC := vm.execute(d)
	if !setsPC {
		vm.PC += isa.InstructionLen
	}

	return nil
}

// updateTimers decrements Delay and Sound by elapsedSeconds*isa.TimerFreq,
// clamped at zero.
func (vm *VM) updateTimers(elapsedSeconds float64) {
	dec := elapsedSeconds * isa.TimerFreq

	vm.Delay -= dec
	if vm.Delay < 0 {
		vm.Delay = 0
	}

	vm.Sound -= dec
	if vm.Sound < 0 {
		vm.Sound = 0
	}
}

// execute carries out the semantics of one decoded instruction. It returns
// true when the instruction already set PC itself (RET, JP, CALL,
// JP V0+addr, or the Fx0A latch entry), so Step must not also advance it.
func (vm *VM) execute(d Decoded) bool {
	switch d.Kind {
	case isa.CLS:
		vm.Screen = [isa.ScreenHeight][isa.ScreenWidth]bool{}

	case isa.RET:
		vm.SP--
		vm.SP %= isa.StackSize
		vm.PC = vm.Stack[vm.SP]
		return true

	case isa.SysAddr:
		// Ignored at execution, per the architecture's convention that
		// SYS calls a native routine the interpreter does not model.

	case isa.JpAddr:
		vm.PC = d.Addr
		return true

	case isa.CallAddr:
		vm.Stack[vm.SP%isa.StackSize] = vm.PC + isa.InstructionLen
		vm.SP = (vm.SP + 1) % isa.StackSize
		vm.PC = d.Addr
		return true

	case isa.SeVB:
		if vm.V[d.Vx] == d.Byte {
			vm.PC += isa.InstructionLen
		}

	case isa.SneVB:
		if vm.V[d.Vx] != d.Byte {
			vm.PC += isa.InstructionLen
		}

	case isa.SeVV:
		if vm.V[d.Vx] == vm.V[d.Vy] {
			vm.PC += isa.InstructionLen
		}

	case isa.LdVB:
		vm.V[d.Vx] = d.Byte

	case isa.AddVB:
		vm.V[d.Vx] += d.Byte

	case isa.LdVV:
		vm.V[d.Vx] = vm.V[d.Vy]

	case isa.OrVV:
		vm.V[d.Vx] |= vm.V[d.Vy]

	case isa.AndVV:
		vm.V[d.Vx] &= vm.V[d.Vy]

	case isa.XorVV:
		vm.V[d.Vx] ^= vm.V[d.Vy]

	case isa.AddVV:
		sum := uint16(vm.V[d.Vx]) + uint16(vm.V[d.Vy])
		vm.V[d.Vx] = uint8(sum)
		vm.setFlag(sum > 0xFF)

	case isa.SubVV:
		borrow := vm.V[d.Vx] >= vm.V[d.Vy]
		vm.V[d.Vx] = vm.V[d.Vx] - vm.V[d.Vy]
		vm.setFlag(borrow)

	case isa.ShrV:
		carry := vm.V[d.Vx] & 0x1
		vm.V[d.Vx] >>= 1
		vm.setFlag(carry != 0)

	case isa.SubnVV:
		borrow := vm.V[d.Vy] >= vm.V[d.Vx]
		vm.V[d.Vx] = vm.V[d.Vy] - vm.V[d.Vx]
		vm.setFlag(borrow)

	case isa.ShlV:
		carry := (vm.V[d.Vx] >> 7) & 0x1
		vm.V[d.Vx] <<= 1
		vm.setFlag(carry != 0)

	case isa.SneVV:
		if vm.V[d.Vx] != vm.V[d.Vy] {
			vm.PC += isa.InstructionLen
		}

	case isa.LdIAddr:
		vm.I = d.Addr

	case isa.JpV0Addr:
		vm.PC = d.Addr + uint16(vm.V[0])
		return true

	case isa.RndVB:
		vm.V[d.Vx] = uint8(rand.Intn(256)) & d.Byte

	case isa.DrwVVN:
		collision := vm.drawSprite(vm.V[d.Vx], vm.V[d.Vy], d.Nibble)
		vm.setFlag(collision)

	case isa.SkpV:
		if vm.Key != isa.KeyNone && uint8(vm.Key) == vm.V[d.Vx] {
			vm.PC += isa.InstructionLen
		}

	case isa.SknpV:
		if vm.Key == isa.KeyNone || uint8(vm.Key) != vm.V[d.Vx] {
			vm.PC += isa.InstructionLen
		}

	case isa.LdVDT:
		vm.V[d.Vx] = uint8(roundTimer(vm.Delay))

	case isa.LdVK:
		vm.waitForKey = true
		vm.waitReg = d.Vx
		return true

	case isa.LdDTV:
		vm.Delay = float64(vm.V[d.Vx])

	case isa.LdSTV:
		vm.Sound = float64(vm.V[d.Vx])

	case isa.AddIV:
		vm.I += uint16(vm.V[d.Vx])

	case isa.LdFV:
		vm.I = uint16(vm.V[d.Vx]) * isa.FontGlyphHeight

	case isa.LdBV:
		value := vm.V[d.Vx]
		vm.RAM[int(vm.I)%isa.RAMSize] = value / 100
		vm.RAM[(int(vm.I)+1)%isa.RAMSize] = (value / 10) % 10
		vm.RAM[(int(vm.I)+2)%isa.RAMSize] = value % 10

	case isa.LdIMV:
		for r := uint8(0); r <= d.Vx; r++ {
			vm.RAM[(int(vm.I)+int(r))%isa.RAMSize] = vm.V[r]
		}

	case isa.LdVIM:
		for r := uint8(0); r <= d.Vx; r++ {
			vm.V[r] = vm.RAM[(int(vm.I)+int(r))%isa.RAMSize]
		}
	}

	return false
}

func (vm *VM) setFlag(b bool) {
	if b {
		vm.V[isa.FlagReg] = 1
	} else {
		vm.V[isa.FlagReg] = 0
	}
}

func roundTimer(v float64) float64 {
	return float64(int64(v + 0.5))
}
