package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

func TestBounce(t *testing.T) {
	s := sim.New()
	s.Pluck(0, 0.5, 1.0)

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := Bounce(f, s, 0.05, 4.0); err != nil {
		t.Fatalf("bounce failed: %v", err)
	}
	f.Close()

	r, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if buf.Format.NumChannels != 1 {
		t.Errorf("expected mono, got %d channels", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != 44100 {
		t.Errorf("expected 44100 Hz, got %d", buf.Format.SampleRate)
	}

	wantFrames := int(0.05 * 44100)
	if len(buf.Data) != wantFrames {
		t.Errorf("expected %d frames, got %d", wantFrames, len(buf.Data))
	}

	// A plucked string must produce a non-silent signal.
	nonZero := 0
	for _, v := range buf.Data {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("rendered audio is silent")
	}
}

func TestBounceRejectsZeroDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer f.Close()

	if err := Bounce(f, sim.New(), 0, 1.0); err == nil {
		t.Error("expected error for zero duration")
	}
}
