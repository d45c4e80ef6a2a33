package physics

import "math"

// Bridge is the shared coupling point at the strings' right end.
// Stiffness 1 is fully rigid instantaneous coupling; 0 freezes the bridge
// and disables energy transfer entirely.
type Bridge struct {
	Y         float64
	V         float64 // display only, derived
	Stiffness float64
}

func NewBridge() *Bridge {
	return &Bridge{Stiffness: 1.0}
}

// Couple merges the two boundary candidates into the next shared bridge
// position. The candidates are combined as a tension-weighted average so
// the stiffer string dominates, then blended with the previous position
// through the stiffness factor. The result is clamped to [-0.5, 0.5];
// a non-finite result is replaced by zero.
func (b *Bridge) Couple(tension1, want1, tension2, want2, dt float64) float64 {
	total := tension1 + tension2
	next := (tension1*want1 + tension2*want2) / total

	next = b.Stiffness*next + (1.0-b.Stiffness)*b.Y

	if next > 0.5 {
		next = 0.5
	} else if next < -0.5 {
		next = -0.5
	}
	if math.IsNaN(next) || math.IsInf(next, 0) {
		next = 0.0
	}

	b.V = (next - b.Y) / dt
	b.Y = next
	return next
}

// Reset restores the bridge to its initial rigid, centered state.
func (b *Bridge) Reset() {
	b.Y = 0
	b.V = 0
	b.Stiffness = 1.0
}
