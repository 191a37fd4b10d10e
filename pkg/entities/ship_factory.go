package entities

import (
	"fmt"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
)

// NewPlayerShip creates the player ship at its start position, two thirds
// of the way down the playfield, with full health and shields.
func NewPlayerShip(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	p := cfg.Player
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Playfield.Width / 2,
		Y: cfg.Playfield.Height * 2 / 3,
	})
	em.AddComponent(id, &components.CollisionComponent{Width: p.Width, Height: p.Height})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: p.MaxHealth, MaxHealth: p.MaxHealth})
	em.AddComponent(id, &components.PlayerComponent{
		Speed:         p.Speed,
		Shield:        p.MaxShield,
		MaxShield:     p.MaxShield,
		FlashDuration: p.FlashFrames,
	})
	return id, nil
}

// NewPlayerLaser creates one upward laser fired by the ship.
func NewPlayerLaser(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64, piercing bool) ecs.EntityID {
	p := cfg.Player
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -p.LaserSpeed})
	em.AddComponent(id, &components.CollisionComponent{Width: p.LaserWidth, Height: p.LaserHeight})
	em.AddComponent(id, &components.ProjectileComponent{
		FromPlayer: true,
		Damage:     p.LaserDamage,
		Piercing:   piercing,
	})
	return id
}
