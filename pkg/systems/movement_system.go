package systems

import (
	"math"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
)

const (
	swarmerDriftFrequency = 0.1
	swarmerDriftAmplitude = 2.0
	sporeArcFrequency     = 0.1
	sporeArcAmplitude     = 1.0
)

// MovementSystem advances enemies, projectiles and power-ups by one frame
// and removes those that left the playfield.
type MovementSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
}

// NewMovementSystem creates the system.
func NewMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig) *MovementSystem {
	return &MovementSystem{em: em, cfg: cfg}
}

// Update moves everything one step.
func (s *MovementSystem) Update() {
	s.advanceEnemies()
	s.advanceVelocities()
}

func (s *MovementSystem) advanceEnemies() {
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.Y += enemy.Speed
		if enemy.SineDrift {
			pos.X += math.Sin(pos.Y*swarmerDriftFrequency) * swarmerDriftAmplitude
		}
		enemy.Age++

		if s.isExpired(id, pos) {
			s.em.DestroyEntity(id)
		}
	}
}

// advanceVelocities moves lasers, enemy projectiles and power-ups.
func (s *MovementSystem) advanceVelocities() {
	for _, id := range ecs.GetEntitiesWith2[*components.VelocityComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarked(id) {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.em, id); ok && proj.Arc {
			proj.ArcAge++
			pos.X += math.Sin(float64(proj.ArcAge)*sporeArcFrequency) * sporeArcAmplitude
		}

		if s.isExpired(id, pos) {
			s.em.DestroyEntity(id)
		}
	}
}

// isExpired reports whether the entity is entirely outside the playfield in
// the direction it can leave: enemies and pickups off the bottom, lasers
// off the top, enemy projectiles off any edge.
func (s *MovementSystem) isExpired(id ecs.EntityID, pos *components.PositionComponent) bool {
	h := 0.0
	w := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		h, w = col.Height, col.Width
	}
	fieldW, fieldH := s.cfg.Playfield.Width, s.cfg.Playfield.Height

	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.em, id); ok {
		if proj.FromPlayer {
			return pos.Y < -h
		}
		return pos.Y > fieldH+h || pos.Y < -fieldH || pos.X < -w || pos.X > fieldW+w
	}
	return pos.Y > fieldH+h
}
