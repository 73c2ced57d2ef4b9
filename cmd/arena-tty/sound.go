package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/arena/telemetry"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for absorptions and game over.
// A Sound whose speaker failed to open stays silent.
type Sound struct {
	ready bool
	muted bool
}

// NewSound opens the speaker. Failure is not fatal: the returned Sound is silent.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{ready: true}, nil
}

// ToggleMute flips muting and returns the new state.
func (s *Sound) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Play voices the events of one tick. At most one tone per tick is played.
func (s *Sound) Play(events []telemetry.Event) {
	if !s.ready || s.muted {
		return
	}
	for _, ev := range events {
		switch {
		case ev.Type == telemetry.EventGameOver:
			s.tones(0.4, 330, 220, 147)
			return
		case ev.PlayerLoss():
			s.tones(0.3, 196)
			return
		case ev.PlayerGain():
			s.tones(0.25, absorbPitch(ev.Amount))
			return
		}
	}
}

// tones plays the given frequencies in sequence, 70ms each.
func (s *Sound) tones(volume float64, freqs ...float64) {
	var parts []beep.Streamer
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(70*time.Millisecond), sine))
	}
	if len(parts) == 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(volume),
	})
}

// absorbPitch maps the absorbed radius to a tone: small morsels chirp high,
// large catches sound low.
func absorbPitch(radius float64) float64 {
	const hi, lo = 1320.0, 330.0
	t := min(max(radius/40, 0), 1)
	return hi - (hi-lo)*t
}
