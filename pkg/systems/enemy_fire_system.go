package systems

import (
	"log"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// shot is one projectile a fire pattern wants to create.
type shot struct {
	x, y, vx, vy float64
}

// patternFunc computes the shots of one volley from the muzzle position.
type patternFunc func(enemy *components.EnemyComponent, x, y, speed float64) []shot

var firePatterns = map[types.FirePattern]patternFunc{
	types.PatternSingle: func(_ *components.EnemyComponent, x, y, speed float64) []shot {
		return []shot{{x: x, y: y, vy: speed}}
	},
	types.PatternTwin: func(e *components.EnemyComponent, x, y, speed float64) []shot {
		return []shot{
			{x: x - e.TwinOffset, y: y, vy: speed},
			{x: x + e.TwinOffset, y: y, vy: speed},
		}
	},
	// the sideways weave of an arc shot is applied by MovementSystem
	types.PatternArc: func(_ *components.EnemyComponent, x, y, speed float64) []shot {
		return []shot{{x: x, y: y, vy: speed}}
	},
}

// EnemyFireSystem lets every enemy fire when its cooldown allows.
type EnemyFireSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
}

// NewEnemyFireSystem creates the system.
func NewEnemyFireSystem(em *ecs.EntityManager, cfg *config.GameConfig) *EnemyFireSystem {
	return &EnemyFireSystem{em: em, cfg: cfg}
}

// Update fires or counts down each enemy's cooldown. The cooldown is reset
// only on frames the enemy actually fires.
func (s *EnemyFireSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		if s.em.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if !enemy.ReadyToFire() {
			enemy.FireCooldown--
			continue
		}
		if s.fire(id, enemy) > 0 {
			enemy.FireCooldown = enemy.FirePeriod
		}
	}
}

// fire spawns the volley of one enemy and returns how many shots it made.
func (s *EnemyFireSystem) fire(id ecs.EntityID, enemy *components.EnemyComponent) int {
	pattern, ok := firePatterns[enemy.Pattern]
	if !ok {
		return 0
	}
	b, ok := getBody(s.em, id)
	if !ok {
		return 0
	}
	stats, ok := s.cfg.ProjectileStats(enemy.ProjectileKind)
	if !ok {
		return 0
	}

	shots := pattern(enemy, b.pos.X, b.pos.Y+b.col.HalfHeight(), stats.Speed)
	for _, sh := range shots {
		if _, err := entities.NewEnemyProjectile(s.em, s.cfg, enemy.ProjectileKind, sh.x, sh.y, sh.vx, sh.vy); err != nil {
			log.Printf("[EnemyFireSystem] Failed to fire %s: %v", enemy.ProjectileKind, err)
		}
	}
	return len(shots)
}
