// Package render bounces a simulation to audio offline. It steps the
// physics at the oversampled rate and decimates to 44.1 kHz; there is no
// real-time callback path.
package render

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

const (
	bitDepth = 16
	maxInt16 = 32767

	// pickupIndex is where the virtual pickup reads displacement, near the
	// bridge like a guitar pickup but still on the speaking length.
	pickupIndex = 160
)

// Bounce runs the simulation for the given duration and writes mono
// 16-bit PCM. The signal is the summed displacement of both strings at
// the pickup point, scaled by gain and hard-clipped to full scale. The
// simulation is stepped in place; callers wanting a clean state should
// Reset afterwards.
func Bounce(w io.WriteSeeker, s *sim.Simulation, seconds, gain float64) error {
	frames := int(seconds * sim.SampleRate)
	if frames <= 0 {
		return fmt.Errorf("render: non-positive duration %f", seconds)
	}

	data := make([]int, frames)
	for i := 0; i < frames; i++ {
		s.Step(sim.Oversample)

		d1 := s.Displacement1()
		d2 := s.Displacement2()
		v := (d1[pickupIndex] + d2[pickupIndex]) * gain
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		data[i] = int(v * maxInt16)
	}

	enc := wav.NewEncoder(w, int(sim.SampleRate), bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(sim.SampleRate)},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: writing samples: %w", err)
	}
	return enc.Close()
}
