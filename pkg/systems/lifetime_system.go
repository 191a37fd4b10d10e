package systems

import (
	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
)

// LifetimeSystem removes entities whose frame budget has run out.
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem creates a lifetime system.
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update advances every lifetime by one frame.
func (s *LifetimeSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarked(id) {
			continue
		}
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.ElapsedFrames++
		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
		}
	}
}
