package physics

// InteriorUpdate writes the next-step displacement for the fixed end and
// all interior samples into next. The bridge-end sample is left for the
// coupling stage. The update is the standard explicit leapfrog scheme
//
//	y_new[i] = 2y[i] - y_prev[i] + r^2*(y[i+1] - 2y[i] + y[i-1]) - damping*dt*v[i]
//
// with velocity taken as (y[i]-y_prev[i])/dt.
func (s *String) InteriorUpdate(next *[NumPoints]float64, dt float64) {
	r := s.WaveSpeed * dt / Dx
	r2 := r * r

	next[0] = 0
	for i := 1; i < NumPoints-1; i++ {
		lap := s.Y[i+1] - 2.0*s.Y[i] + s.Y[i-1]
		vel := (s.Y[i] - s.YPrev[i]) / dt
		next[i] = 2.0*s.Y[i] - s.YPrev[i] + r2*lap - s.Damping*dt*vel
	}
}

// BoundaryCandidate extrapolates the update formula to the bridge-end
// sample, standing in for the missing outside neighbor with the boundary
// sample's own current value. The estimate is first-order and degenerate
// on purpose: it shapes the coupled timbre and must not be replaced with
// a true reflecting boundary condition.
func (s *String) BoundaryCandidate(dt float64) float64 {
	r := s.WaveSpeed * dt / Dx
	r2 := r * r
	n := NumPoints

	lap := s.Y[n-2] - 2.0*s.Y[n-1] + s.Y[n-1]
	vel := (s.Y[n-1] - s.YPrev[n-1]) / dt
	return 2.0*s.Y[n-1] - s.YPrev[n-1] + r2*lap - s.Damping*dt*vel
}

// Commit rotates the displacement snapshots, derives the velocity buffer,
// updates the force-on-bridge diagnostic from the new boundary slope, and
// recomputes the energies. next must already hold the constrained bridge
// value in its last sample.
func (s *String) Commit(next *[NumPoints]float64, dt float64) {
	for i := 0; i < NumPoints; i++ {
		s.V[i] = (next[i] - s.Y[i]) / dt
		s.YPrev[i] = s.Y[i]
		s.Y[i] = next[i]
	}

	slope := (s.Y[NumPoints-1] - s.Y[NumPoints-2]) / Dx
	s.ForceOnBridge = -s.Tension * slope

	s.ComputeEnergy()
}
