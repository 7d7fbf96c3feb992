// Package vmath provides float64 2D math helpers for the frame loop.
// All angles are radians; all positions and velocities are in cell units.
package vmath

import "math"

// Tau is a full turn. Oscillation accumulators wrap at this bound.
const Tau = 2 * math.Pi

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly from a to b; t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapTau wraps an accumulator into [0, Tau)
// Bounds float growth for time accumulators over long sessions
func WrapTau(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	return a
}
