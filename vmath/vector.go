package vmath

import "math"

// Length returns vector magnitude
func Length(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns the unit vector, zero-safe
// A zero-length input returns (0, 0) rather than dividing by zero
func Normalize(dx, dy float64) (nx, ny float64) {
	mag := Length(dx, dy)
	if mag == 0 {
		return 0, 0
	}
	return dx / mag, dy / mag
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Length(x2-x1, y2-y1)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Length(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}
