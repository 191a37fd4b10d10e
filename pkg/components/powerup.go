package components

// PowerUpComponent marks a collectible that grants triple shot.
type PowerUpComponent struct {
	Duration int // frames of triple shot granted on pickup
}
