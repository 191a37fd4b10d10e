package components

import (
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func newTestShip(health, shield int) (*PlayerComponent, *HealthComponent) {
	return &PlayerComponent{Shield: shield, MaxShield: 7, FlashDuration: 10},
		&HealthComponent{CurrentHealth: health, MaxHealth: 5}
}

func TestTakeDamage_AbilityShieldAbsorbsEverything(t *testing.T) {
	for _, amount := range []int{1, 3, 5, 100} {
		p, h := newTestShip(5, 2)
		p.ActivateAbility(types.AbilityShield, 300)

		if killed := p.TakeDamage(h, amount); killed {
			t.Errorf("amount %d: killed through ability shield", amount)
		}
		if h.CurrentHealth != 5 {
			t.Errorf("amount %d: health = %d, want 5", amount, h.CurrentHealth)
		}
		if p.Shield != 2 {
			t.Errorf("amount %d: shield points = %d, want 2", amount, p.Shield)
		}
		if p.AbilityShield {
			t.Errorf("amount %d: ability shield not cleared", amount)
		}
		if p.Ability != types.AbilityNone {
			t.Errorf("amount %d: ability = %v, want none", amount, p.Ability)
		}
		if p.FlashTimer != 0 {
			t.Errorf("amount %d: flash started without health loss", amount)
		}
	}
}

func TestTakeDamage_ShieldPoints(t *testing.T) {
	tests := []struct {
		name       string
		shield     int
		amount     int
		wantShield int
		wantHealth int
		wantFlash  bool
	}{
		{"shield covers hit", 4, 3, 1, 5, false},
		{"exact shield", 3, 3, 0, 5, false},
		{"overflow to health", 2, 5, 0, 2, true},
		{"no shield", 0, 1, 0, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, h := newTestShip(5, tt.shield)
			p.TakeDamage(h, tt.amount)
			if p.Shield != tt.wantShield {
				t.Errorf("shield = %d, want %d", p.Shield, tt.wantShield)
			}
			if h.CurrentHealth != tt.wantHealth {
				t.Errorf("health = %d, want %d", h.CurrentHealth, tt.wantHealth)
			}
			if got := p.FlashTimer > 0; got != tt.wantFlash {
				t.Errorf("flash running = %v, want %v", got, tt.wantFlash)
			}
		})
	}
}

func TestTakeDamage_ThreeHitsThenFlashExpires(t *testing.T) {
	p, h := newTestShip(5, 0)
	for i := 0; i < 3; i++ {
		if p.TakeDamage(h, 1) {
			t.Fatalf("hit %d killed the ship", i+1)
		}
	}
	if h.CurrentHealth != 2 {
		t.Fatalf("health = %d, want 2", h.CurrentHealth)
	}
	if p.FlashTimer == 0 {
		t.Fatal("flash timer should be running right after a hit")
	}
	for i := 0; i < p.FlashDuration; i++ {
		p.Tick()
	}
	if p.FlashTimer != 0 {
		t.Errorf("flash timer = %d after %d frames, want 0", p.FlashTimer, p.FlashDuration)
	}
	if p.Invulnerable() {
		t.Error("ship still invulnerable after flash ended")
	}
}

func TestTakeDamage_ReportsKill(t *testing.T) {
	p, h := newTestShip(2, 0)
	if !p.TakeDamage(h, 3) {
		t.Error("expected kill when damage exceeds health")
	}
}

func TestActivateAbility(t *testing.T) {
	p, _ := newTestShip(5, 0)

	if p.ActivateAbility(types.AbilityNone, 300) {
		t.Error("AbilityNone must be rejected")
	}
	if p.ActivateAbility(types.AbilityID(42), 300) {
		t.Error("unknown ability must be rejected")
	}

	p.ActivateAbility(types.AbilityShield, 300)
	p.ActivateAbility(types.AbilityPiercing, 300)
	if p.AbilityShield {
		t.Error("activating piercing should clear the ability shield")
	}
	if !p.PiercingActive() {
		t.Error("piercing should be active")
	}

	for i := 0; i < 300; i++ {
		p.Tick()
	}
	if p.PiercingActive() || p.Ability != types.AbilityNone {
		t.Errorf("piercing should expire after its duration, ability = %v", p.Ability)
	}
}

func TestRapidFireActive(t *testing.T) {
	p, _ := newTestShip(5, 0)
	if p.RapidFireActive() {
		t.Fatal("rapid fire active on a fresh ship")
	}
	p.ActivateAbility(types.AbilityRapidFire, 2)
	if !p.RapidFireActive() {
		t.Fatal("rapid fire should be active")
	}
	p.Tick()
	p.Tick()
	if p.RapidFireActive() {
		t.Error("rapid fire should have expired")
	}
	p.DebugRapidFire = true
	if !p.RapidFireActive() {
		t.Error("debug rapid fire should force rapid fire")
	}
}
