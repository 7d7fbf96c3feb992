package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	nx, ny := Normalize(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected Normalize(0,0) == (0,0), got (%v,%v)", nx, ny)
	}
	if math.IsNaN(nx) || math.IsNaN(ny) {
		t.Error("Normalize(0,0) produced NaN")
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"Axis aligned", 10, 0},
		{"Diagonal", 3, 4},
		{"Negative", -7, -2},
		{"Tiny", 1e-9, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := Normalize(tt.dx, tt.dy)
			mag := Length(nx, ny)
			if math.Abs(mag-1) > 1e-9 {
				t.Errorf("Expected unit length, got %v", mag)
			}
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		maxMag  float64
		clamped bool
	}{
		{"Under limit", 1, 1, 10, false},
		{"At limit", 3, 4, 5, false},
		{"Over limit", 30, 40, 5, true},
		{"Zero vector", 0, 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := ClampMagnitude(tt.x, tt.y, tt.maxMag)
			mag := Length(cx, cy)
			if mag > tt.maxMag+1e-9 {
				t.Errorf("Magnitude %v exceeds limit %v", mag, tt.maxMag)
			}
			if !tt.clamped && (cx != tt.x || cy != tt.y) {
				t.Errorf("Expected vector unchanged, got (%v,%v)", cx, cy)
			}
			if tt.clamped {
				// Direction preserved
				ox, oy := Normalize(tt.x, tt.y)
				nx, ny := Normalize(cx, cy)
				if math.Abs(ox-nx) > 1e-9 || math.Abs(oy-ny) > 1e-9 {
					t.Errorf("Direction changed: (%v,%v) vs (%v,%v)", ox, oy, nx, ny)
				}
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Expected distance 0, got %v", d)
	}
}

func TestWrapTau(t *testing.T) {
	tests := []struct {
		name string
		in   float64
	}{
		{"Zero", 0},
		{"Under tau", 3.1},
		{"Over tau", Tau + 1.5},
		{"Many turns", 100 * Tau},
		{"Negative", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := WrapTau(tt.in)
			if out < 0 || out >= Tau {
				t.Errorf("WrapTau(%v) = %v, outside [0, Tau)", tt.in, out)
			}
			// Same angle modulo a full turn
			if math.Abs(math.Sin(out)-math.Sin(tt.in)) > 1e-6 {
				t.Errorf("WrapTau(%v) changed the angle", tt.in)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("Lerp(2,10,0.5) = %v, want 6", got)
	}
	if got := Lerp(5, 5, 0.3); got != 5 {
		t.Errorf("Lerp(5,5,0.3) = %v, want 5", got)
	}
}
