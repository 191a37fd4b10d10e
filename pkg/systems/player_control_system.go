package systems

import (
	"math"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
)

// PlayerControlSystem applies the latched move and fire commands to the
// ship, then counts down its timers.
type PlayerControlSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
}

// NewPlayerControlSystem creates the system.
func NewPlayerControlSystem(em *ecs.EntityManager, cfg *config.GameConfig) *PlayerControlSystem {
	return &PlayerControlSystem{em: em, cfg: cfg}
}

// Update moves the ship, fires if a shot was requested and the cooldown
// allows it, and ticks cooldown, flash, ability and power-up timers.
func (s *PlayerControlSystem) Update() {
	id := ecs.FirstWith[*components.PlayerComponent](s.em)
	if id == 0 {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	ship, ok := getBody(s.em, id)
	if !ok {
		return
	}

	s.move(player, ship)

	if player.FireRequested {
		s.fire(player, ship.pos)
	}
	player.FireRequested = false

	player.Tick()
}

func (s *PlayerControlSystem) move(player *components.PlayerComponent, ship body) {
	dx := clampUnit(player.MoveX) * player.Speed
	dy := clampUnit(player.MoveY) * player.Speed

	halfW, halfH := ship.col.HalfWidth(), ship.col.HalfHeight()
	ship.pos.X = math.Max(halfW, math.Min(s.cfg.Playfield.Width-halfW, ship.pos.X+dx))
	ship.pos.Y = math.Max(halfH, math.Min(s.cfg.Playfield.Height-halfH, ship.pos.Y+dy))
}

// fire spawns one laser, or three while triple shot is active.
func (s *PlayerControlSystem) fire(player *components.PlayerComponent, pos *components.PositionComponent) {
	if player.FireCooldown > 0 {
		return
	}
	cooldown := s.cfg.Player.FireCooldown
	if player.RapidFireActive() {
		cooldown /= 2
	}
	player.FireCooldown = cooldown

	piercing := player.PiercingActive()
	if player.PowerUpTimer > 0 {
		spacing := s.cfg.Player.TripleSpacing
		entities.NewPlayerLaser(s.em, s.cfg, pos.X-spacing, pos.Y, piercing)
		entities.NewPlayerLaser(s.em, s.cfg, pos.X, pos.Y, piercing)
		entities.NewPlayerLaser(s.em, s.cfg, pos.X+spacing, pos.Y, piercing)
		return
	}
	entities.NewPlayerLaser(s.em, s.cfg, pos.X, pos.Y, piercing)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
