// Package audio plays short generated crackle bursts through the speaker.
// Purely cosmetic: initialization failure disables the service and the toy
// runs silent.
package audio

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/embergaze/core"
)

const sampleRate = beep.SampleRate(44100)

// Service implements engine.AudioPlayer over the beep speaker
type Service struct {
	ready bool
	muted atomic.Bool
}

// NewService creates an uninitialized service with the given mute state
func NewService(muted bool) *Service {
	s := &Service{}
	s.muted.Store(muted)
	return s
}

// Init opens the speaker. Returns the backend error so the caller can log
// it; the service stays disabled and Play becomes a no-op.
func (s *Service) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}
	s.ready = true
	return nil
}

// Play triggers a cosmetic sound. Returns false when disabled or muted.
func (s *Service) Play(snd core.Sound) bool {
	if !s.ready || s.muted.Load() {
		return false
	}

	switch snd {
	case core.SoundTouch:
		speaker.Play(noiseBurst(90*time.Millisecond, 0.25))
	case core.SoundSpark:
		speaker.Play(noiseBurst(40*time.Millisecond, 0.15))
	default:
		return false
	}
	return true
}

// ToggleMute flips the mute state and returns the new value
func (s *Service) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the current mute state
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// noiseBurst streams white noise with a linear decay envelope — a soft
// fire-crackle approximation that needs no sample assets
func noiseBurst(dur time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(total)
			if env < 0 {
				env = 0
			}
			v := (rand.Float64()*2 - 1) * gain * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}
