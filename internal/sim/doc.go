// Package sim owns the coupled two-string simulation: both string states,
// the bridge, the fixed timestep, and the bounded energy/bridge histories.
//
// A [Simulation] is single-threaded by contract: Pluck, Step, Reset, and
// every accessor run to completion on the calling goroutine with no
// internal locking. The core never self-paces; callers drive Step at a
// cadence matching the fixed 8x oversampled timestep if simulated time
// should track real time.
//
// Out-of-range inputs are silently clamped, never rejected. The only
// detected failure mode is a non-finite bridge position, recovered
// in place by substituting zero.
package sim
