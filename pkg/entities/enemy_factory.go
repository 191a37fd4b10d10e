package entities

import (
	"fmt"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// NewEnemy creates a regular enemy of the given type from the enemy table.
// The fire cooldown starts at zero, so a fresh enemy shoots on its first frame.
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, enemyType types.EnemyType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	stats, ok := cfg.EnemyStats(enemyType)
	if !ok {
		return 0, fmt.Errorf("no stats for enemy type %s", enemyType)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: stats.Health, MaxHealth: stats.Health})
	em.AddComponent(id, &components.EnemyComponent{
		Type:           enemyType,
		Speed:          stats.Speed,
		ContactDamage:  cfg.Rules.EnemyContactDamage,
		Pattern:        stats.Pattern,
		ProjectileKind: stats.Projectile,
		TwinOffset:     stats.TwinOffset,
		FirePeriod:     stats.FireCooldown,
		SineDrift:      stats.SineDrift,
	})
	return id, nil
}

// NewEnemyProjectile creates an enemy projectile moving with (vx, vy) per
// frame. Every enemy projectile carries health so lasers can shoot it down;
// kinds with a lifetime (mines) also get a LifetimeComponent.
func NewEnemyProjectile(em *ecs.EntityManager, cfg *config.GameConfig, kind types.ProjectileKind, x, y, vx, vy float64) (ecs.EntityID, error) {
	stats, ok := cfg.ProjectileStats(kind)
	if !ok {
		return 0, fmt.Errorf("no stats for projectile kind %s", kind)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: stats.Health, MaxHealth: stats.Health})
	em.AddComponent(id, &components.ProjectileComponent{
		Kind:   kind,
		Damage: stats.Damage,
		Arc:    kind == types.ProjectileSpore,
	})
	if stats.Lifetime > 0 {
		em.AddComponent(id, &components.LifetimeComponent{MaxFrames: stats.Lifetime})
	}
	return id, nil
}
