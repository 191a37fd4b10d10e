package entities

import (
	"log"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// NewBoss creates the boss just above the playfield, horizontally centred.
// It starts in phase 1 with the 100% boundary already crossed and descends
// to half its own height before fighting.
func NewBoss(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	b := cfg.Boss
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: cfg.Playfield.Width / 2, Y: -b.Height})
	em.AddComponent(id, &components.CollisionComponent{Width: b.Width, Height: b.Height})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: b.Health, MaxHealth: b.Health})

	crossed := make([]bool, len(b.Phases))
	if len(crossed) > 0 {
		crossed[0] = true
	}
	em.AddComponent(id, &components.BossComponent{
		Entering:      true,
		RestY:         b.Height / 2,
		Phase:         1,
		Crossed:       crossed,
		Direction:     1,
		Cooldowns:     make(map[types.BossAttack]int),
		Beam:          types.BeamIdle,
		ContactDamage: b.ContactDamage,
	})

	log.Printf("[BossFactory] Boss %d spawned with %d HP", id, b.Health)
	return id
}
