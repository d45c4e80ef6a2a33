package sim

import "context"

// Result holds series sampled from a batch run, plus the final
// displacement snapshots for plotting.
type Result struct {
	Times   []float64
	Energy1 []float64
	Energy2 []float64
	BridgeY []float64

	FinalDisplacement1 []float64
	FinalDisplacement2 []float64

	Steps int
}

// Run advances the simulation by the given number of steps, sampling the
// energies and bridge position every stride steps. The context is checked
// once per stride so long runs stay interruptible; on cancellation the
// partial result is returned alongside the context error.
func (s *Simulation) Run(ctx context.Context, steps, stride int) (*Result, error) {
	if stride < 1 {
		stride = 1
	}

	result := &Result{
		Times:   make([]float64, 0, steps/stride+1),
		Energy1: make([]float64, 0, steps/stride+1),
		Energy2: make([]float64, 0, steps/stride+1),
		BridgeY: make([]float64, 0, steps/stride+1),
	}

	for done := 0; done < steps; done += stride {
		select {
		case <-ctx.Done():
			result.FinalDisplacement1 = s.Displacement1()
			result.FinalDisplacement2 = s.Displacement2()
			return result, ctx.Err()
		default:
		}

		chunk := stride
		if remaining := steps - done; remaining < chunk {
			chunk = remaining
		}
		s.Step(chunk)
		result.Steps += chunk

		result.Times = append(result.Times, s.time)
		result.Energy1 = append(result.Energy1, s.string1.TotalEnergy)
		result.Energy2 = append(result.Energy2, s.string2.TotalEnergy)
		result.BridgeY = append(result.BridgeY, s.bridge.Y)
	}

	result.FinalDisplacement1 = s.Displacement1()
	result.FinalDisplacement2 = s.Displacement2()
	return result, nil
}
