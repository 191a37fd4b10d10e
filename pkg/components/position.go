package components

// PositionComponent is the centre of an entity in playfield pixels.
// The origin is the top-left corner; y grows downward.
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent is a per-frame displacement.
type VelocityComponent struct {
	VX float64
	VY float64
}
