package components

// StarComponent is one background star. Stars scroll down and wrap to the
// top; they never interact with anything.
type StarComponent struct {
	Speed float64
	Size  float64
}
