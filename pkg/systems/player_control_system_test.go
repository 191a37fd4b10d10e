package systems

import (
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func countLasers(em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if p.FromPlayer {
			n++
		}
	}
	return n
}

func TestPlayerControl_FireRate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *components.PlayerComponent)
		want  int
	}{
		{"normal", func(p *components.PlayerComponent) {}, 2},
		{"rapid fire ability", func(p *components.PlayerComponent) { p.ActivateAbility(types.AbilityRapidFire, 300) }, 5},
		{"debug rapid fire", func(p *components.PlayerComponent) { p.DebugRapidFire = true }, 5},
		{"triple shot", func(p *components.PlayerComponent) { p.PowerUpTimer = 300 }, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			ship := w.placeShip(t, 400, 400)
			p := player(t, w.em, ship)
			tt.setup(p)
			s := NewPlayerControlSystem(w.em, w.cfg)

			for i := 0; i < 30; i++ {
				p.FireRequested = true
				s.Update()
			}
			if got := countLasers(w.em); got != tt.want {
				t.Errorf("lasers = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlayerControl_FireRequestIsConsumed(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	p := player(t, w.em, ship)
	s := NewPlayerControlSystem(w.em, w.cfg)

	p.FireRequested = true
	s.Update()
	for i := 0; i < 30; i++ {
		s.Update()
	}
	if got := countLasers(w.em); got != 1 {
		t.Errorf("lasers = %d, want 1", got)
	}
}

func TestPlayerControl_PiercingLasers(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	p := player(t, w.em, ship)
	p.ActivateAbility(types.AbilityPiercing, 300)
	p.FireRequested = true

	NewPlayerControlSystem(w.em, w.cfg).Update()

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
		if !proj.Piercing {
			t.Error("laser fired under the piercing ability should pierce")
		}
	}
}

func TestPlayerControl_MoveClampsToPlayfield(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 30, 590)
	p := player(t, w.em, ship)
	p.MoveX, p.MoveY = -5, 1
	s := NewPlayerControlSystem(w.em, w.cfg)

	for i := 0; i < 20; i++ {
		s.Update()
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, ship)
	if pos.X != 20 || pos.Y != 585 {
		t.Errorf("ship at (%v, %v), want (20, 585)", pos.X, pos.Y)
	}
}

func TestPlayerControl_MoveSpeed(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 300)
	p := player(t, w.em, ship)
	p.MoveX = 1

	NewPlayerControlSystem(w.em, w.cfg).Update()

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, ship)
	if pos.X != 405 {
		t.Errorf("x = %v, want 405", pos.X)
	}
}
