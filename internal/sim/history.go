package sim

// HistoryCapacity bounds each of the three history sequences.
const HistoryCapacity = 500

// History holds three length-aligned ring buffers sampling both strings'
// total energy and the bridge position. When full, the oldest triple is
// evicted so the sequences always share length and eviction cadence.
type History struct {
	energy1 []float64
	energy2 []float64
	bridgeY []float64
	head    int
	size    int
}

func NewHistory(capacity int) *History {
	return &History{
		energy1: make([]float64, capacity),
		energy2: make([]float64, capacity),
		bridgeY: make([]float64, capacity),
	}
}

// Record appends one aligned triple, evicting the oldest when full.
func (h *History) Record(energy1, energy2, bridgeY float64) {
	idx := (h.head + h.size) % len(h.energy1)
	if h.size == len(h.energy1) {
		idx = h.head
		h.head = (h.head + 1) % len(h.energy1)
	} else {
		h.size++
	}
	h.energy1[idx] = energy1
	h.energy2[idx] = energy2
	h.bridgeY[idx] = bridgeY
}

func (h *History) Len() int { return h.size }

// Energy1 returns the string-1 energy sequence, oldest first.
func (h *History) Energy1() []float64 { return h.unroll(h.energy1) }

// Energy2 returns the string-2 energy sequence, oldest first.
func (h *History) Energy2() []float64 { return h.unroll(h.energy2) }

// BridgeY returns the bridge position sequence, oldest first.
func (h *History) BridgeY() []float64 { return h.unroll(h.bridgeY) }

func (h *History) unroll(buf []float64) []float64 {
	out := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = buf[(h.head+i)%len(buf)]
	}
	return out
}

// Reset clears all three sequences without reallocating.
func (h *History) Reset() {
	h.head = 0
	h.size = 0
}
