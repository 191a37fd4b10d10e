package systems

import (
	"math"
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func newTestSpawner(w *testWorld, gate SpawnGate, level int) *SpawnSystem {
	lv, _ := w.cfg.Level(level)
	return NewSpawnSystem(w.em, w.cfg, w.rng, w.events, gate, lv)
}

func TestEnemyWeights(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		level int
		want  map[types.EnemyType]float64
	}{
		{1, map[types.EnemyType]float64{
			types.EnemySwarmer: 0.4 / 0.6,
			types.EnemyStriker: 0.2 / 0.6,
		}},
		{3, map[types.EnemyType]float64{
			types.EnemySwarmer:   0.225 / 0.5875,
			types.EnemyStriker:   0.1125 / 0.5875,
			types.EnemyDestroyer: 0.1 / 0.5875,
			types.EnemyHarvester: 0.15 / 0.5875,
		}},
	}
	for _, tt := range tests {
		got := EnemyWeights(cfg, tt.level)
		if len(got) != len(tt.want) {
			t.Errorf("level %d: %d eligible types, want %d", tt.level, len(got), len(tt.want))
		}
		sum := 0.0
		for et, w := range got {
			sum += w
			if math.Abs(w-tt.want[et]) > 1e-9 {
				t.Errorf("level %d: weight(%s) = %v, want %v", tt.level, et, w, tt.want[et])
			}
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("level %d: weights sum to %v", tt.level, sum)
		}
	}
}

func TestSpawnSystem_Period(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{}, 1)

	for i := 0; i < 59; i++ {
		s.Update()
	}
	if n := countLive[*components.EnemyComponent](w.em); n != 0 {
		t.Fatalf("spawned %d enemies before the first period", n)
	}
	s.Update()
	if n := countLive[*components.EnemyComponent](w.em); n != 1 {
		t.Errorf("enemies after one period = %d, want 1", n)
	}
}

func TestSpawnSystem_ActiveCap(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{}, 1)

	for i := 0; i < 60*10; i++ {
		s.Update()
	}
	if n := countLive[*components.EnemyComponent](w.em); n != 6 {
		t.Errorf("enemies = %d, want cap 6", n)
	}
}

func TestSpawnSystem_StopsWhenQuotaMet(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{defeats: 10}, 1)

	for i := 0; i < 120; i++ {
		s.Update()
	}
	if n := countLive[*components.EnemyComponent](w.em); n != 0 {
		t.Errorf("enemies = %d after quota, want 0", n)
	}
}

func TestSpawnSystem_OnlyEligibleTypes(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{}, 1)

	for i := 0; i < 60*6; i++ {
		s.Update()
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](w.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
		if enemy.Type != types.EnemySwarmer && enemy.Type != types.EnemyStriker {
			t.Errorf("level 1 spawned %s", enemy.Type)
		}
	}
}

func TestSpawnSystem_BossWithoutPreBossWave(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{}, 5)

	s.Start()
	s.Start()
	for i := 0; i < 120; i++ {
		s.Update()
	}

	if !s.BossSpawned() {
		t.Fatal("boss should spawn at level start")
	}
	if n := countLive[*components.BossComponent](w.em); n != 1 {
		t.Errorf("bosses = %d, want exactly 1", n)
	}
	if n := countLive[*components.EnemyComponent](w.em); n != 0 {
		t.Errorf("regular enemies on the boss level = %d, want 0", n)
	}
	if got := countEvents(w.events.Drain(), event.BossSpawned); got != 1 {
		t.Errorf("BossSpawned events = %d, want 1", got)
	}
}

func TestSpawnSystem_PreBossWave(t *testing.T) {
	w := newTestWorld()
	w.cfg.Levels[4].PreBossQuota = 3
	gate := &stubGate{preBoss: 3}
	s := newTestSpawner(w, gate, 5)

	s.Start()
	for i := 0; i < 40*3; i++ {
		s.Update()
	}
	if s.BossSpawned() {
		t.Fatal("boss spawned before the pre-boss wave was cleared")
	}
	if countLive[*components.EnemyComponent](w.em) == 0 {
		t.Fatal("pre-boss wave should spawn regular enemies")
	}

	gate.defeats = 3
	s.Update()
	if !s.BossSpawned() {
		t.Fatal("boss should spawn once the wave is cleared")
	}
	before := countLive[*components.EnemyComponent](w.em)
	for i := 0; i < 40*3; i++ {
		s.Update()
	}
	if after := countLive[*components.EnemyComponent](w.em); after != before {
		t.Errorf("regular spawning continued after the boss: %d -> %d", before, after)
	}
}

func TestSpawnSystem_PowerUpWindow(t *testing.T) {
	w := newTestWorld()
	s := newTestSpawner(w, &stubGate{defeats: 10}, 1)

	for i := 0; i < w.cfg.PowerUp.Period; i++ {
		s.Update()
	}
	if n := countLive[*components.PowerUpComponent](w.em); n != 1 {
		t.Fatalf("power-ups after one window = %d, want 1", n)
	}
}

func TestSpawnSystem_DropSpendsWindow(t *testing.T) {
	w := newTestWorld()
	w.cfg.PowerUp.DropChance = 1
	s := newTestSpawner(w, &stubGate{defeats: 10}, 1)

	if !s.TryDropPowerUp(100, 100) {
		t.Fatal("first drop in a window should succeed")
	}
	if s.TryDropPowerUp(120, 100) {
		t.Error("second drop in the same window should be refused")
	}
	for i := 0; i < w.cfg.PowerUp.Period; i++ {
		s.Update()
	}
	if n := countLive[*components.PowerUpComponent](w.em); n != 1 {
		t.Errorf("power-ups = %d, want 1 (timer skipped after a drop)", n)
	}
	if !s.TryDropPowerUp(100, 100) {
		t.Error("a new window should allow another drop")
	}
}

func TestSpawnSystem_DropChanceZero(t *testing.T) {
	w := newTestWorld()
	w.cfg.PowerUp.DropChance = 0
	s := newTestSpawner(w, &stubGate{}, 1)

	for i := 0; i < 50; i++ {
		if s.TryDropPowerUp(100, 100) {
			t.Fatal("drop with zero chance")
		}
	}
}
