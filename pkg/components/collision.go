package components

// CollisionComponent is an axis-aligned hitbox centred on the entity's
// position. It is the only collision shape the simulation uses.
type CollisionComponent struct {
	Width  float64
	Height float64
}

// HalfWidth returns half the box width.
func (c *CollisionComponent) HalfWidth() float64 { return c.Width / 2 }

// HalfHeight returns half the box height.
func (c *CollisionComponent) HalfHeight() float64 { return c.Height / 2 }
