package entities

import (
	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
)

// NewPowerUp creates a falling triple-shot pickup.
func NewPowerUp(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	p := cfg.PowerUp
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VY: p.Speed})
	em.AddComponent(id, &components.CollisionComponent{Width: p.Width, Height: p.Height})
	em.AddComponent(id, &components.PowerUpComponent{Duration: p.Duration})
	return id
}

// NewStar creates one background star.
func NewStar(em *ecs.EntityManager, x, y, speed, size float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.StarComponent{Speed: speed, Size: size})
	return id
}
