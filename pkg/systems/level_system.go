package systems

import (
	"log"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
)

// LevelGoal is the part of the progress ledger that decides completion.
type LevelGoal interface {
	CheckLevelComplete() bool
}

// LevelSystem watches the end conditions of a level.
//
// Completion latches once and starts the celebration freeze; while the
// freeze runs the ship cannot die, so completion wins over a death in the
// same frame. Game over latches when the ship's health reaches zero.
type LevelSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	events *event.Dispatcher
	goal   LevelGoal
	level  int

	completed   bool
	celebration int
	gameOver    bool
}

// NewLevelSystem creates the watcher for level.
func NewLevelSystem(em *ecs.EntityManager, cfg *config.GameConfig, events *event.Dispatcher, goal LevelGoal, level int) *LevelSystem {
	return &LevelSystem{em: em, cfg: cfg, events: events, goal: goal, level: level}
}

// Update evaluates the end conditions after combat resolution.
func (s *LevelSystem) Update() {
	if s.completed || s.gameOver {
		return
	}

	if s.goal.CheckLevelComplete() {
		s.completed = true
		s.celebration = s.cfg.Rules.CelebrationFrames
		log.Printf("[LevelSystem] Level %d complete", s.level)
		s.events.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: s.level}})
		return
	}

	if s.shipDestroyed() {
		s.gameOver = true
		log.Printf("[LevelSystem] Game over on level %d", s.level)
	}
}

func (s *LevelSystem) shipDestroyed() bool {
	id := ecs.FirstWith[*components.PlayerComponent](s.em)
	if id == 0 {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	return ok && health.IsDead()
}

// Celebrating reports whether the completion freeze is running.
func (s *LevelSystem) Celebrating() bool {
	return s.completed && s.celebration > 0
}

// TickCelebration counts the freeze down by one frame and reports whether
// it just ended.
func (s *LevelSystem) TickCelebration() bool {
	if !s.Celebrating() {
		return false
	}
	s.celebration--
	return s.celebration == 0
}

// CelebrationRemaining returns the frames left in the completion freeze.
func (s *LevelSystem) CelebrationRemaining() int {
	return s.celebration
}

// Completed reports whether the level goal was met.
func (s *LevelSystem) Completed() bool {
	return s.completed
}

// GameOver reports whether the ship was destroyed.
func (s *LevelSystem) GameOver() bool {
	return s.gameOver
}
