package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// SpawnGate is the part of the progress ledger the spawner consults.
type SpawnGate interface {
	LevelDefeats() int
	PreBossWaveCleared() bool
}

// SpawnSystem decides when and what to create: regular enemies on a fixed
// period, the boss once its pre-boss wave is cleared, and power-ups.
type SpawnSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	rng    *rand.Rand
	events *event.Dispatcher
	gate   SpawnGate
	level  config.LevelConfig

	spawnTimer    int
	powerUpTimer  int
	powerUpIssued bool // a power-up already appeared in the current window
	bossSpawned   bool
}

// NewSpawnSystem creates a spawner for one level.
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand,
	events *event.Dispatcher, gate SpawnGate, level config.LevelConfig) *SpawnSystem {
	return &SpawnSystem{
		em:     em,
		cfg:    cfg,
		rng:    rng,
		events: events,
		gate:   gate,
		level:  level,
	}
}

// Start runs the checks that happen at level start: on a boss level whose
// pre-boss quota is zero the boss appears immediately.
func (s *SpawnSystem) Start() {
	s.trySpawnBoss()
}

// BossSpawned reports whether the boss has been created on this level.
func (s *SpawnSystem) BossSpawned() bool {
	return s.bossSpawned
}

// Update advances the spawn timers by one frame.
func (s *SpawnSystem) Update() {
	if s.regularWaveActive() {
		s.spawnTimer++
		if s.spawnTimer >= s.level.SpawnPeriod {
			s.spawnTimer = 0
			s.trySpawnEnemy()
		}
	}
	s.trySpawnBoss()
	s.updatePowerUpWindow()
}

// regularWaveActive reports whether regular enemies may still be spawned.
// On a boss level they only appear as the pre-boss wave.
func (s *SpawnSystem) regularWaveActive() bool {
	if s.level.Boss {
		return !s.bossSpawned && s.gate.LevelDefeats() < s.level.PreBossQuota
	}
	return s.gate.LevelDefeats() < s.level.Quota
}

func (s *SpawnSystem) trySpawnEnemy() {
	if countLive[*components.EnemyComponent](s.em) >= s.level.EnemyCap {
		return
	}
	enemyType, ok := s.pickEnemyType()
	if !ok {
		return
	}
	margin := s.cfg.Spawner.MarginX
	x := margin + s.rng.Float64()*(s.cfg.Playfield.Width-2*margin)
	if _, err := entities.NewEnemy(s.em, s.cfg, enemyType, x, s.cfg.Spawner.SpawnY); err != nil {
		log.Printf("[SpawnSystem] Failed to spawn %s: %v", enemyType, err)
	}
}

// EnemyWeights returns the renormalized spawn weights for a level: only
// types introduced at or before the level are eligible, and each type's
// weight decays by AgeDecay for every level since its introduction.
func EnemyWeights(cfg *config.GameConfig, level int) map[types.EnemyType]float64 {
	weights := make(map[types.EnemyType]float64)
	total := 0.0
	for _, et := range types.AllEnemyTypes {
		stats, ok := cfg.EnemyStats(et)
		if !ok || stats.IntroducedAt > level || stats.Weight <= 0 {
			continue
		}
		w := stats.Weight * math.Pow(cfg.Spawner.AgeDecay, float64(level-stats.IntroducedAt))
		weights[et] = w
		total += w
	}
	if total == 0 {
		return weights
	}
	for et := range weights {
		weights[et] /= total
	}
	return weights
}

func (s *SpawnSystem) pickEnemyType() (types.EnemyType, bool) {
	weights := EnemyWeights(s.cfg, s.level.Number)
	if len(weights) == 0 {
		return types.EnemyUnknown, false
	}
	roll := s.rng.Float64()
	var last types.EnemyType
	for _, et := range types.AllEnemyTypes {
		w, ok := weights[et]
		if !ok {
			continue
		}
		last = et
		if roll < w {
			return et, true
		}
		roll -= w
	}
	// rounding left a sliver at the top of the range
	return last, true
}

func (s *SpawnSystem) trySpawnBoss() {
	if !s.level.Boss || s.bossSpawned || !s.gate.PreBossWaveCleared() {
		return
	}
	s.bossSpawned = true
	entities.NewBoss(s.em, s.cfg)
	s.events.Dispatch(event.Event{Type: event.BossSpawned})
	log.Printf("[SpawnSystem] Boss spawned on level %d", s.level.Number)
}

// updatePowerUpWindow spawns a power-up at the end of each window unless a
// kill drop already used it.
func (s *SpawnSystem) updatePowerUpWindow() {
	s.powerUpTimer++
	if s.powerUpTimer < s.cfg.PowerUp.Period {
		return
	}
	s.powerUpTimer = 0
	if !s.powerUpIssued {
		margin := s.cfg.Spawner.MarginX
		x := margin + s.rng.Float64()*(s.cfg.Playfield.Width-2*margin)
		entities.NewPowerUp(s.em, s.cfg, x, -s.cfg.PowerUp.Height)
	}
	s.powerUpIssued = false
}

// TryDropPowerUp rolls the per-kill drop chance at (x, y). A drop spends
// the current window, so at most one power-up appears per period.
func (s *SpawnSystem) TryDropPowerUp(x, y float64) bool {
	if s.powerUpIssued {
		return false
	}
	if s.rng.Float64() >= s.cfg.PowerUp.DropChance {
		return false
	}
	s.powerUpIssued = true
	entities.NewPowerUp(s.em, s.cfg, x, y)
	return true
}
