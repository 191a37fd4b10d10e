package components

import "github.com/leoprimesmatrix/Starfall/pkg/types"

// BossComponent is the state of the boss phase machine.
type BossComponent struct {
	// Entering is true while the boss descends to RestY; it neither moves
	// sideways nor attacks until it arrives.
	Entering bool
	RestY    float64

	// Phase is 1..5 and never decreases.
	Phase int
	// Crossed[i] is set once health has fallen to or below threshold i.
	Crossed []bool
	// TransitionTimer freezes movement and attacks while > 0.
	TransitionTimer int

	Direction float64 // +1 right, -1 left
	MoveClock int     // frames spent moving, drives the vertical bob

	Cooldowns map[types.BossAttack]int

	Beam         types.BeamState
	BeamTimer    int
	BeamTick     int
	BeamTargetX  float64
	BeamCooldown int
	// BeamDamageDue is set on the active-beam frames that deal damage.
	BeamDamageDue bool

	ContactDamage int
	Defeated      bool
}

// Frozen reports whether a phase transition is in progress.
func (b *BossComponent) Frozen() bool {
	return b.TransitionTimer > 0
}

// BeamFiring reports whether the beam is currently dealing damage.
func (b *BossComponent) BeamFiring() bool {
	return b.Beam == types.BeamActive
}
