package components

// HealthComponent stores hit points for anything that can be damaged:
// the ship, enemies, the boss and multi-hit projectiles (plasma, mines).
type HealthComponent struct {
	CurrentHealth int
	MaxHealth     int
}

// ApplyDamage subtracts amount and reports whether this hit took health
// from above zero to zero or below. It is not idempotent: call it once per
// hit event. Hitting something already at zero never reports a kill twice.
func (h *HealthComponent) ApplyDamage(amount int) (killed bool) {
	if h.CurrentHealth <= 0 {
		return false
	}
	h.CurrentHealth -= amount
	return h.CurrentHealth <= 0
}

// Ratio returns CurrentHealth/MaxHealth, or 0 when MaxHealth is not positive.
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}

// IsDead reports whether health has reached zero.
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
