// Package physics implements the finite-difference model of two strings
// coupled through a shared bridge.
//
// Each [String] carries two displacement snapshots and advances with an
// explicit leapfrog-style update; velocity is derived from consecutive
// positions and used only for energy accounting. The [Bridge] merges both
// strings' boundary extrapolations into one shared position, which is the
// sole channel through which energy crosses between the strings.
//
// # Stability
//
// The explicit update is stable only while the Courant number c*dt/dx
// stays below 1. The package does not enforce this at runtime. With the
// fixed 8x oversampled timestep in the sim package, r is about 0.3 at the
// default C4 tuning, 0.56 at 500 Hz, and crosses 1 near 886 Hz, so the
// top of the 50-1000 Hz tuning range is not CFL-stable; there the bridge
// position clamp and non-finite recovery bound the blow-up instead.
// Callers changing the sample count or timestep must re-verify r
// themselves.
package physics
