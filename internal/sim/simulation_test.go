package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		s = sim.New()
	})

	Describe("bridge constraint", func() {
		It("forces both strings' bridge-end samples to the bridge position after every step", func() {
			s.Pluck(0, 0.5, 1.0)
			for i := 0; i < 10; i++ {
				s.Step(37) // odd stride so the check hits arbitrary step counts
				d1 := s.Displacement1()
				d2 := s.Displacement2()
				Expect(d1[len(d1)-1]).To(Equal(s.BridgeY()))
				Expect(d2[len(d2)-1]).To(Equal(s.BridgeY()))
			}
		})
	})

	Describe("energy accounting", func() {
		It("keeps kinetic and potential energy non-negative", func() {
			s.Pluck(0, 0.3, 0.8)
			s.Pluck(1, 0.7, 0.4)
			s.Step(5000)
			Expect(s.Kinetic1()).To(BeNumerically(">=", 0))
			Expect(s.Kinetic2()).To(BeNumerically(">=", 0))
			Expect(s.Potential1()).To(BeNumerically(">=", 0))
			Expect(s.Potential2()).To(BeNumerically(">=", 0))
		})

		It("does not grow combined energy with zero damping and a rigid bridge", func() {
			s.SetDamping(0)
			s.SetBridgeStiffness(1.0)
			s.Pluck(0, 0.5, 1.0)
			initial := s.TotalEnergy()
			Expect(initial).To(BeNumerically(">", 0))

			s.Step(10000)

			// Small discretization drift is allowed; growth is not.
			Expect(s.TotalEnergy()).To(BeNumerically("<=", initial*1.05))
		})

		It("transfers energy across the bridge from a plucked string to a silent one", func() {
			s.Pluck(0, 0.5, 1.0)
			postPluck := s.Energy1()
			Expect(s.Energy2()).To(BeZero())

			s.Step(800)

			Expect(s.Energy1()).To(BeNumerically("<", postPluck))
			Expect(s.Energy2()).To(BeNumerically(">", 0))
		})
	})

	Describe("bridge stiffness", func() {
		It("fully decouples the strings at stiffness zero", func() {
			s.SetBridgeStiffness(0)
			s.Pluck(0, 0.5, 1.0)
			s.Step(2000)

			Expect(s.Energy2()).To(BeNumerically("~", 0, 1e-12))
			Expect(s.BridgeY()).To(BeZero())
		})
	})

	Describe("parameter clamping", func() {
		It("clamps frequencies to [50, 1000] Hz", func() {
			s.SetString1Frequency(10)
			Expect(s.Frequency1()).To(Equal(50.0))
			s.SetString2Frequency(5000)
			Expect(s.Frequency2()).To(Equal(1000.0))
		})

		It("clamps damping and stiffness", func() {
			s.SetDamping(1.0)
			Expect(s.Damping()).To(Equal(0.01))
			s.SetDamping(-1.0)
			Expect(s.Damping()).To(BeZero())
			s.SetBridgeStiffness(3.0)
			Expect(s.BridgeStiffness()).To(Equal(1.0))
		})

		It("routes out-of-range pluck indices to string 2", func() {
			s.Pluck(7, 0.5, 1.0)
			Expect(s.Energy2()).To(BeNumerically(">", 0))
			Expect(s.Energy1()).To(BeZero())
		})
	})

	Describe("history recording", func() {
		It("samples every 100 steps and never exceeds capacity", func() {
			s.Pluck(0, 0.5, 1.0)

			s.Step(1000)
			Expect(s.Energy1History()).To(HaveLen(10))

			s.Step(100 * (sim.HistoryCapacity + 50))
			Expect(s.Energy1History()).To(HaveLen(sim.HistoryCapacity))
			Expect(s.Energy2History()).To(HaveLen(sim.HistoryCapacity))
			Expect(s.BridgeHistory()).To(HaveLen(sim.HistoryCapacity))
		})
	})

	Describe("reset", func() {
		It("is observationally identical to a fresh instance", func() {
			s.Pluck(0, 0.5, 1.0)
			s.SetString1Frequency(440)
			s.SetDamping(0.005)
			s.SetBridgeStiffness(0.3)
			s.Step(1500)

			s.Reset()
			fresh := sim.New()

			Expect(s.Time()).To(BeZero())
			Expect(s.StepCount()).To(BeZero())
			Expect(s.Frequency1()).To(Equal(sim.DefaultFrequency1))
			Expect(s.Frequency2()).To(Equal(sim.DefaultFrequency2))
			Expect(s.BridgeY()).To(BeZero())
			Expect(s.BridgeV()).To(BeZero())
			Expect(s.BridgeStiffness()).To(Equal(1.0))
			Expect(s.Energy1History()).To(BeEmpty())
			Expect(s.Displacement1()).To(Equal(fresh.Displacement1()))
			Expect(s.Displacement2()).To(Equal(fresh.Displacement2()))
			Expect(s.TotalEnergy()).To(Equal(fresh.TotalEnergy()))
		})
	})
})
