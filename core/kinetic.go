package core

// Kinetic integrates a velocity-driven offset relative to an anchor.
// OffsetX/Y accumulate velocity every tick; VelX/Y are in cells per tick
// after scaling by the integrator (see physics.ApplyAttraction).
type Kinetic struct {
	OffsetX, OffsetY float64
	VelX, VelY       float64
}

// Offset returns the accumulated offset as a vector
func (k *Kinetic) Offset() Vec2 {
	return Vec2{k.OffsetX, k.OffsetY}
}
