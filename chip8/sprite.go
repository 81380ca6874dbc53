package chip8

import "github.com/coreeight/chip8toolkit/isa"

// drawSprite XOR-blits an n-row, 8-pixel-wide sprite read from vm.RAM[vm.I:]
// onto the screen at (x, y), wrapping both axes, and returns whether any
// pixel transitioned from on to off (the collision flag written to VF).
func (vm *VM) drawSprite(x, y uint8, n uint8) bool {
	collision := false

	for i := uint8(0); i < n; i++ {
		row := vm.RAM[(int(vm.I)+int(i))%isa.RAMSize]
		py := (int(y) + int(i)) % isa.ScreenHeight

		for j := uint8(0); j < 8; j++ {
			if row&(0x80>>j) == 0 {
				continue
			}
			px := (int(x) + int(j)) % isa.ScreenWidth

			if vm.Screen[py][px] {
				collision = true
			}
			vm.Screen[py][px] = !vm.Screen[py][px]
		}
	}

	return collision
}
