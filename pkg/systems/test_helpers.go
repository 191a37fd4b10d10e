package systems

import (
	"math/rand"
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// testWorld bundles what most system tests need.
type testWorld struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	events *event.Dispatcher
	rng    *rand.Rand
}

func newTestWorld() *testWorld {
	events := event.NewDispatcher()
	events.Record(true)
	return &testWorld{
		em:     ecs.NewEntityManager(),
		cfg:    config.DefaultGameConfig(),
		events: events,
		rng:    rand.New(rand.NewSource(1)),
	}
}

// placeShip creates the player ship and moves it to (x, y).
func (w *testWorld) placeShip(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayerShip(w.em, w.cfg)
	if err != nil {
		t.Fatalf("NewPlayerShip: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	return id
}

func (w *testWorld) placeEnemy(t *testing.T, et types.EnemyType, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.em, w.cfg, et, x, y)
	if err != nil {
		t.Fatalf("NewEnemy(%s): %v", et, err)
	}
	return id
}

func (w *testWorld) placeProjectile(t *testing.T, kind types.ProjectileKind, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyProjectile(w.em, w.cfg, kind, x, y, 0, 0)
	if err != nil {
		t.Fatalf("NewEnemyProjectile(%s): %v", kind, err)
	}
	return id
}

// placeBoss creates a boss that has finished its entry at (x, y).
func (w *testWorld) placeBoss(x, y float64) ecs.EntityID {
	id := entities.NewBoss(w.em, w.cfg)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	boss, _ := ecs.GetComponent[*components.BossComponent](w.em, id)
	boss.Entering = false
	boss.RestY = y
	return id
}

// countEvents returns how many drained events have the given type.
func countEvents(events []event.Event, et event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func health(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no HealthComponent", id)
	}
	return h
}

func player(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PlayerComponent {
	t.Helper()
	p, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PlayerComponent", id)
	}
	return p
}

// stubGate is a SpawnGate with fixed answers.
type stubGate struct {
	defeats int
	preBoss int
}

func (g *stubGate) LevelDefeats() int        { return g.defeats }
func (g *stubGate) PreBossWaveCleared() bool { return g.defeats >= g.preBoss }

// stubDropper records power-up drop rolls.
type stubDropper struct {
	calls int
}

func (d *stubDropper) TryDropPowerUp(x, y float64) bool {
	d.calls++
	return false
}
