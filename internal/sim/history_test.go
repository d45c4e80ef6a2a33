package sim

import "testing"

func TestHistoryRecordAligned(t *testing.T) {
	h := NewHistory(3)

	h.Record(1, 10, 100)
	h.Record(2, 20, 200)

	if h.Len() != 2 {
		t.Fatalf("expected length 2, got %d", h.Len())
	}

	e1, e2, by := h.Energy1(), h.Energy2(), h.BridgeY()
	if len(e1) != len(e2) || len(e2) != len(by) {
		t.Fatalf("sequences misaligned: %d %d %d", len(e1), len(e2), len(by))
	}
	if e1[0] != 1 || e2[0] != 10 || by[0] != 100 {
		t.Errorf("unexpected oldest triple: %v %v %v", e1[0], e2[0], by[0])
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Record(float64(i), float64(i*10), float64(i*100))
	}

	if h.Len() != 3 {
		t.Fatalf("expected length capped at 3, got %d", h.Len())
	}

	e1 := h.Energy1()
	want := []float64{3, 4, 5}
	for i, w := range want {
		if e1[i] != w {
			t.Errorf("position %d: expected %v, got %v", i, w, e1[i])
		}
	}

	// Eviction must stay in lockstep across all three sequences.
	by := h.BridgeY()
	if by[0] != 300 || by[2] != 500 {
		t.Errorf("bridge sequence out of step: %v", by)
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(3)
	h.Record(1, 2, 3)
	h.Reset()

	if h.Len() != 0 {
		t.Errorf("expected empty history after reset, got %d", h.Len())
	}
	if len(h.Energy1()) != 0 {
		t.Errorf("expected empty sequence after reset")
	}
}
