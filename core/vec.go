package core

import "github.com/lixenwraith/embergaze/vmath"

// Vec2 is a 2D point or offset in cell coordinates
// Value semantics: operations return new values, receivers are never mutated
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Length() float64 {
	return vmath.Length(v.X, v.Y)
}

// Distance returns the Euclidean distance to o
func (v Vec2) Distance(o Vec2) float64 {
	return vmath.Distance(v.X, v.Y, o.X, o.Y)
}
