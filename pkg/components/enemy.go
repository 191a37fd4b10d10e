package components

import "github.com/leoprimesmatrix/Starfall/pkg/types"

// EnemyComponent marks a regular enemy ship and carries its firing state.
// Static stats are copied from the enemy table at spawn time.
type EnemyComponent struct {
	Type          types.EnemyType
	Speed         float64
	ContactDamage int

	Pattern        types.FirePattern
	ProjectileKind types.ProjectileKind
	TwinOffset     float64
	FirePeriod     int
	FireCooldown   int // counts down every frame the enemy does not fire

	// SineDrift makes the ship weave sideways as it descends.
	SineDrift bool
	Age       int
}

// ReadyToFire reports whether the cooldown has run out.
func (e *EnemyComponent) ReadyToFire() bool {
	return e.FireCooldown <= 0
}
