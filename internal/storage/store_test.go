package storage

import (
	"testing"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Times:   []float64{0.001, 0.002, 0.003},
		Energy1: []float64{5.0, 4.0, 3.0},
		Energy2: []float64{0.0, 0.5, 1.5},
		BridgeY: []float64{0.0, 0.01, -0.02},
		Steps:   1000,
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		String1Hz:       261.63,
		String2Hz:       392.00,
		Damping:         0.00001,
		BridgeStiffness: 1.0,
		Dt:              sim.Dt,
	}

	runID, err := st.Save(meta, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.String2Hz != 392.00 {
		t.Errorf("expected 392.00, got %f", loaded.String2Hz)
	}
	if loaded.Steps != 1000 {
		t.Errorf("expected 1000 steps, got %d", loaded.Steps)
	}
	if loaded.FinalEnergy1 != 3.0 || loaded.FinalEnergy2 != 1.5 {
		t.Errorf("unexpected final energies: %f / %f", loaded.FinalEnergy1, loaded.FinalEnergy2)
	}
}

func TestLoadHistory(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	h, err := st.LoadHistory(runID)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}

	if len(h.Times) != 3 || len(h.Energy1) != 3 || len(h.Energy2) != 3 || len(h.BridgeY) != 3 {
		t.Fatalf("unexpected series lengths: %d %d %d %d",
			len(h.Times), len(h.Energy1), len(h.Energy2), len(h.BridgeY))
	}
	if h.BridgeY[2] != -0.02 {
		t.Errorf("expected -0.02, got %f", h.BridgeY[2])
	}
}

func TestSaveDistinctIDs(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id, err := st.Save(RunMetadata{}, testResult())
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if ids[id] {
			t.Fatalf("duplicate run ID %s", id)
		}
		ids[id] = true
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
