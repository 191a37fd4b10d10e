package components

import "github.com/leoprimesmatrix/Starfall/pkg/types"

// PlayerComponent holds the ship state that is not covered by
// PositionComponent and HealthComponent.
type PlayerComponent struct {
	Speed float64

	Shield    int // regular shield points, consumed before health
	MaxShield int

	// AbilityShield is the one-shot shield granted by the shield ability.
	// It absorbs one hit completely, independent of Shield.
	AbilityShield bool
	Ability       types.AbilityID
	AbilityTimer  int // frames left for timed abilities

	FireCooldown  int // frames until the next shot is allowed
	FlashTimer    int // damage flash; the ship counts as invulnerable while > 0
	FlashDuration int

	PowerUpTimer   int // frames of triple shot left
	DebugRapidFire bool

	// FireRequested is latched by the session and consumed by PlayerControlSystem.
	FireRequested bool
	MoveX, MoveY  float64
}

// Invulnerable reports whether the damage flash is running.
func (p *PlayerComponent) Invulnerable() bool {
	return p.FlashTimer > 0
}

// PiercingActive reports whether lasers fired now should pierce.
func (p *PlayerComponent) PiercingActive() bool {
	return p.Ability == types.AbilityPiercing && p.AbilityTimer > 0
}

// RapidFireActive reports whether the fire cooldown is currently halved.
func (p *PlayerComponent) RapidFireActive() bool {
	return p.DebugRapidFire || (p.Ability == types.AbilityRapidFire && p.AbilityTimer > 0)
}

// TakeDamage applies a hit to the ship.
//
// Precedence: the ability shield absorbs the whole hit and clears itself;
// otherwise shield points soak up to amount and the rest goes to health.
// The flash timer restarts whenever health actually drops. The flash timer
// is not consulted here; callers that want contact immunity check
// Invulnerable themselves. Returns true iff health ends at zero or below.
func (p *PlayerComponent) TakeDamage(health *HealthComponent, amount int) (killed bool) {
	if amount <= 0 {
		return health.CurrentHealth <= 0
	}
	if p.AbilityShield {
		p.AbilityShield = false
		if p.Ability == types.AbilityShield {
			p.Ability = types.AbilityNone
		}
		return health.CurrentHealth <= 0
	}

	remaining := amount
	if p.Shield > 0 {
		absorbed := remaining
		if absorbed > p.Shield {
			absorbed = p.Shield
		}
		p.Shield -= absorbed
		remaining -= absorbed
	}
	if remaining > 0 {
		health.CurrentHealth -= remaining
		p.FlashTimer = p.FlashDuration
	}
	return health.CurrentHealth <= 0
}

// ActivateAbility grants an ability, replacing whatever was active.
// Invalid ids are ignored and reported as false.
func (p *PlayerComponent) ActivateAbility(id types.AbilityID, duration int) bool {
	if !id.Valid() {
		return false
	}
	p.Ability = id
	p.AbilityShield = false
	p.AbilityTimer = 0
	switch id {
	case types.AbilityShield:
		p.AbilityShield = true
	default:
		p.AbilityTimer = duration
	}
	return true
}

// Tick counts down the per-frame player timers.
func (p *PlayerComponent) Tick() {
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if p.FlashTimer > 0 {
		p.FlashTimer--
	}
	if p.AbilityTimer > 0 {
		p.AbilityTimer--
		if p.AbilityTimer == 0 && p.Ability != types.AbilityShield {
			p.Ability = types.AbilityNone
		}
	}
	if p.PowerUpTimer > 0 {
		p.PowerUpTimer--
	}
}
