package console

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// NTSC CPU clock rate; the APU produces one sample per CPU cycle at this
// rate, which emitSample downsamples to sampleRate for output.
const (
	sampleRate  = 44100
	cpuClockHz  = 1789773
)

// soundStream buffers APU samples in a channel, matching the producer/
// consumer shape of the teacher pack's other audio wiring, and exposes
// them to ebiten's audio package as a 16-bit stereo PCM io.Reader.
type soundStream struct {
	samples chan float32
}

func newSoundStream() *soundStream {
	return &soundStream{samples: make(chan float32, sampleRate)}
}

// Read implements io.Reader for audio.NewPlayer, encoding each buffered
// float32 sample as a 16-bit stereo frame (same value on both channels;
// the NES is mono).
func (s *soundStream) Read(p []byte) (int, error) {
	n := 0
	for n+4 <= len(p) {
		var f float32
		select {
		case f = <-s.samples:
		default:
			f = 0
		}
		v := int16(f * 32767)
		p[n] = byte(v)
		p[n+1] = byte(v >> 8)
		p[n+2] = byte(v)
		p[n+3] = byte(v >> 8)
		n += 4
	}
	return n, nil
}

// audio.NewContext panics if called more than once per process, so the
// single shared context is created lazily on first use across every Bus
// instance (harmless in tests that construct several).
var (
	audioCtxOnce sync.Once
	audioCtx     *audio.Context
)

func sharedAudioContext() *audio.Context {
	audioCtxOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// initAudio wires up the ebiten audio context and starts an endlessly
// looping player pulling from the sound stream.
func (b *Bus) initAudio() error {
	b.soundStream = newSoundStream()
	player, err := sharedAudioContext().NewPlayer(b.soundStream)
	if err != nil {
		return err
	}
	player.Play()
	b.player = player
	return nil
}

// emitSample accumulates APU samples (produced at the CPU clock rate)
// down to sampleRate and pushes the average onto the sound stream, as a
// non-blocking send so a full buffer drops samples rather than stalling
// emulation.
func (b *Bus) emitSample(s float32) {
	if b.soundStream == nil {
		return
	}

	b.audioAccum += s
	b.audioCount++

	const ratio = cpuClockHz / sampleRate
	if b.audioCount < ratio {
		return
	}

	avg := b.audioAccum / float32(ratio)
	b.audioAccum = 0
	b.audioCount = 0

	select {
	case b.soundStream.samples <- avg:
	default:
	}
}
