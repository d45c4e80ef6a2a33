package sim

import (
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/physics"
)

const (
	// SampleRate is the nominal audio rate the simulation is built around.
	SampleRate = 44100.0

	// Oversample is the fixed temporal oversampling factor that keeps the
	// explicit update stable without runtime stepsize control.
	Oversample = 8

	// Dt is the fixed physics timestep in seconds.
	Dt = 1.0 / (SampleRate * Oversample)

	// DefaultFrequency1 and DefaultFrequency2 are C4 and G4, a perfect
	// fifth, the interval that shows sympathetic transfer most clearly.
	DefaultFrequency1 = 261.63
	DefaultFrequency2 = 392.00

	historyStride = 100
)

// Parameter clamp ranges applied by the driver's setters.
const (
	MinFrequency = 50.0
	MaxFrequency = 1000.0
	MaxDamping   = 0.01
)

// Simulation drives two strings coupled through a shared bridge. It is the
// sole piece of mutable state; construct one per caller and reset or
// discard it as a unit.
type Simulation struct {
	string1 *physics.String
	string2 *physics.String
	bridge  *physics.Bridge

	time      float64
	stepCount int

	history *History

	// scratch buffers for the next-step displacements
	next1 [physics.NumPoints]float64
	next2 [physics.NumPoints]float64
}

// New constructs a simulation with both strings at rest on the default
// fifth tuning and a fully rigid bridge.
func New() *Simulation {
	return &Simulation{
		string1: physics.NewString(DefaultFrequency1),
		string2: physics.NewString(DefaultFrequency2),
		bridge:  physics.NewBridge(),
		history: NewHistory(HistoryCapacity),
	}
}

// Pluck applies a triangular pluck to one string. Index 0 selects string 1;
// any other value selects string 2. Position and amplitude are clamped by
// the string itself.
func (s *Simulation) Pluck(stringIndex int, position, amplitude float64) {
	target := s.string2
	if stringIndex == 0 {
		target = s.string1
	}
	target.Pluck(position, amplitude)
}

// Step runs n physics steps sequentially. Each step updates both strings'
// interiors, couples the boundaries through the bridge, commits the new
// displacements, and periodically records the histories.
func (s *Simulation) Step(n int) {
	for i := 0; i < n; i++ {
		s.stepOnce()
	}
}

func (s *Simulation) stepOnce() {
	s.string1.InteriorUpdate(&s.next1, Dt)
	s.string2.InteriorUpdate(&s.next2, Dt)

	want1 := s.string1.BoundaryCandidate(Dt)
	want2 := s.string2.BoundaryCandidate(Dt)

	bridgeY := s.bridge.Couple(s.string1.Tension, want1, s.string2.Tension, want2, Dt)

	// Rigid constraint: both strings share the bridge displacement.
	s.next1[physics.NumPoints-1] = bridgeY
	s.next2[physics.NumPoints-1] = bridgeY

	s.string1.Commit(&s.next1, Dt)
	s.string2.Commit(&s.next2, Dt)

	s.time += Dt
	s.stepCount++

	if s.stepCount%historyStride == 0 {
		s.history.Record(s.string1.TotalEnergy, s.string2.TotalEnergy, s.bridge.Y)
	}
}

// Reset reconstructs both strings at the default tuning and clears the
// bridge, counters, and histories. The result is observationally identical
// to a freshly constructed simulation.
func (s *Simulation) Reset() {
	s.string1 = physics.NewString(DefaultFrequency1)
	s.string2 = physics.NewString(DefaultFrequency2)
	s.bridge.Reset()
	s.time = 0
	s.stepCount = 0
	s.history.Reset()
}

// SetString1Frequency retunes string 1, clamped to [50, 1000] Hz.
func (s *Simulation) SetString1Frequency(hz float64) {
	s.string1.SetFrequency(clamp(hz, MinFrequency, MaxFrequency))
}

// SetString2Frequency retunes string 2, clamped to [50, 1000] Hz.
func (s *Simulation) SetString2Frequency(hz float64) {
	s.string2.SetFrequency(clamp(hz, MinFrequency, MaxFrequency))
}

// SetDamping sets both strings' damping, clamped to [0, 0.01].
func (s *Simulation) SetDamping(d float64) {
	d = clamp(d, 0, MaxDamping)
	s.string1.Damping = d
	s.string2.Damping = d
}

// SetBridgeStiffness sets the coupling blend factor, clamped to [0, 1].
func (s *Simulation) SetBridgeStiffness(stiffness float64) {
	s.bridge.Stiffness = clamp(stiffness, 0, 1)
}

// Displacement1 returns a copy of string 1's displacement samples.
func (s *Simulation) Displacement1() []float64 { return copySamples(&s.string1.Y) }

// Displacement2 returns a copy of string 2's displacement samples.
func (s *Simulation) Displacement2() []float64 { return copySamples(&s.string2.Y) }

// Velocity1 returns a copy of string 1's derived velocity samples.
func (s *Simulation) Velocity1() []float64 { return copySamples(&s.string1.V) }

// Velocity2 returns a copy of string 2's derived velocity samples.
func (s *Simulation) Velocity2() []float64 { return copySamples(&s.string2.V) }

// Energy1History, Energy2History, and BridgeHistory return copies of the
// bounded history sequences, oldest first.
func (s *Simulation) Energy1History() []float64 { return s.history.Energy1() }
func (s *Simulation) Energy2History() []float64 { return s.history.Energy2() }
func (s *Simulation) BridgeHistory() []float64  { return s.history.BridgeY() }

func (s *Simulation) Time() float64  { return s.time }
func (s *Simulation) StepCount() int { return s.stepCount }

func (s *Simulation) Kinetic1() float64   { return s.string1.KineticEnergy }
func (s *Simulation) Kinetic2() float64   { return s.string2.KineticEnergy }
func (s *Simulation) Potential1() float64 { return s.string1.PotentialEnergy }
func (s *Simulation) Potential2() float64 { return s.string2.PotentialEnergy }
func (s *Simulation) Energy1() float64    { return s.string1.TotalEnergy }
func (s *Simulation) Energy2() float64    { return s.string2.TotalEnergy }

// TotalEnergy is the combined total of both strings.
func (s *Simulation) TotalEnergy() float64 {
	return s.string1.TotalEnergy + s.string2.TotalEnergy
}

func (s *Simulation) BridgeY() float64         { return s.bridge.Y }
func (s *Simulation) BridgeV() float64         { return s.bridge.V }
func (s *Simulation) BridgeStiffness() float64 { return s.bridge.Stiffness }

func (s *Simulation) Force1() float64 { return s.string1.ForceOnBridge }
func (s *Simulation) Force2() float64 { return s.string2.ForceOnBridge }

func (s *Simulation) Frequency1() float64 { return s.string1.Frequency }
func (s *Simulation) Frequency2() float64 { return s.string2.Frequency }

func (s *Simulation) Damping() float64 { return s.string1.Damping }

func copySamples(src *[physics.NumPoints]float64) []float64 {
	out := make([]float64, physics.NumPoints)
	copy(out, src[:])
	return out
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
