package components

// LifetimeComponent despawns an entity after a fixed number of frames.
// Used for stationary mines, which never leave the playfield on their own.
type LifetimeComponent struct {
	MaxFrames     int
	ElapsedFrames int
}

// Expired reports whether the lifetime is used up.
func (l *LifetimeComponent) Expired() bool {
	return l.ElapsedFrames >= l.MaxFrames
}
