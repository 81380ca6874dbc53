package host

import (
	"fmt"

	"github.com/coreeight/chip8toolkit/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// audioFreq is the sample rate for the generated tone, matching massung's
// audio.go (which also ran its device at a low 2500Hz since CHIP-8 beeps
// carry no pitch information worth reproducing faithfully).
const audioFreq = 2500

// toneHz is the frequency of the square wave played while VM.Sound is active.
const toneHz = 440

// Audio drives a single square-wave tone gated on VM.SoundActive(). Unlike
// massung's cgo-exported callback, samples are generated in pure Go and
// pushed with QueueAudio each frame — the VM exposes no raw timer field for
// a C callback to read, only the SoundActive predicate.
type Audio struct {
	dev    sdl.AudioDeviceID
	phase  float64
	sample []byte
}

// NewAudio opens the default playback device at audioFreq, mono, 8-bit.
func NewAudio() (*Audio, error) {
	want := &sdl.AudioSpec{
		Freq:     audioFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  256,
	}
	dev, err := sdl.OpenAudioDevice("", false, want, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("host: open audio device: %w", err)
	}
	sdl.PauseAudioDevice(dev, false)
	return &Audio{dev: dev, sample: make([]byte, 256)}, nil
}

// Update queues one buffer's worth of tone if vm's sound timer is active,
// and otherwise lets the queue drain silently. Call once per video frame.
func (a *Audio) Update(vm *chip8.VM) error {
	if !vm.SoundActive() {
		return nil
	}

	// Keep the queue shallow so the tone tracks the timer closely instead
	// of buffering minutes of beep ahead of the VM's actual state.
	if sdl.GetQueuedAudioSize(a.dev) > uint32(len(a.sample)*4) {
		return nil
	}

	step := float64(toneHz) / float64(audioFreq)
	for i := range a.sample {
		if a.phase < 0.5 {
			a.sample[i] = 224
		} else {
			a.sample[i] = 32
		}
		a.phase += step
		if a.phase >= 1 {
			a.phase -= 1
		}
	}

	if err := sdl.QueueAudio(a.dev, a.sample); err != nil {
		return fmt.Errorf("host: queue audio: %w", err)
	}
	return nil
}

// Close stops and releases the audio device.
func (a *Audio) Close() {
	sdl.CloseAudioDevice(a.dev)
}
