package physics

import "math"

// NumPoints is the spatial resolution of each string.
const NumPoints = 200

// Dx is the spacing between adjacent samples on a unit-length string.
const Dx = 1.0 / (NumPoints - 1)

// String holds one string's spatial sample buffers and physical parameters.
// Y[0] is the fixed end and stays zero; Y[NumPoints-1] is the bridge end,
// overwritten with the shared bridge position every step.
type String struct {
	Y     [NumPoints]float64 // current displacement
	YPrev [NumPoints]float64 // previous displacement
	V     [NumPoints]float64 // derived velocity, energy accounting only

	Frequency float64
	Tension   float64
	Density   float64 // linear mass density
	Damping   float64
	WaveSpeed float64
	Length    float64 // normalized

	KineticEnergy   float64
	PotentialEnergy float64
	TotalEnergy     float64

	// ForceOnBridge is a diagnostic; it is never fed back into the dynamics.
	ForceOnBridge float64
}

// NewString builds a string at rest tuned to the given frequency.
func NewString(frequency float64) *String {
	s := &String{
		Density: 0.001,
		Damping: 0.00001,
		Length:  1.0,
	}
	s.SetFrequency(frequency)
	return s
}

// SetFrequency retunes the string by recomputing tension at fixed length
// and density: f = c/(2L) gives c = 2Lf, so T = mu*c^2 = 4*mu*L^2*f^2.
// Range clamping is the caller's job.
func (s *String) SetFrequency(frequency float64) {
	s.Frequency = frequency
	s.Tension = 4.0 * s.Density * s.Length * s.Length * frequency * frequency
	s.WaveSpeed = math.Sqrt(s.Tension / s.Density)
}

// Pluck sets a triangular displacement profile peaking at position with
// the given height and zeroes all velocity. The bridge-end sample is left
// untouched; the next step overwrites it through the bridge constraint.
func (s *String) Pluck(position, amplitude float64) {
	position = clamp(position, 0.1, 0.9)
	amplitude = clamp(amplitude, 0.0, 1.0)

	for i := 0; i < NumPoints-1; i++ {
		x := float64(i) / (NumPoints - 1)
		if x < position {
			s.Y[i] = amplitude * x / position
		} else {
			s.Y[i] = amplitude * (1.0 - x) / (1.0 - position)
		}
		s.YPrev[i] = s.Y[i]
	}
	for i := range s.V {
		s.V[i] = 0
	}

	s.Y[0] = 0
	s.YPrev[0] = 0

	s.ComputeEnergy()
}

// ComputeEnergy recomputes the kinetic, potential, and total energy from
// the current velocity and displacement buffers. This is the primary
// physical-consistency oracle for the integrator.
func (s *String) ComputeEnergy() {
	ke, pe := 0.0, 0.0
	for i := 0; i < NumPoints; i++ {
		ke += 0.5 * s.Density * Dx * s.V[i] * s.V[i]
		if i < NumPoints-1 {
			strain := (s.Y[i+1] - s.Y[i]) / Dx
			pe += 0.5 * s.Tension * strain * strain * Dx
		}
	}
	s.KineticEnergy = ke
	s.PotentialEnergy = pe
	s.TotalEnergy = ke + pe
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
