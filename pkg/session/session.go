// Package session is the simulation loop and session controller. It owns
// every entity of the current level, advances the systems once per fixed
// frame, and turns navigation requests into state-machine transitions.
//
// A Session is not safe for concurrent use; the front-end drives it from
// a single goroutine.
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/game"
	"github.com/leoprimesmatrix/Starfall/pkg/metrics"
	"github.com/leoprimesmatrix/Starfall/pkg/systems"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// Option customizes a Session.
type Option func(*Session)

// WithRand makes the session draw every random number from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithRecorder reports frame timings and game events to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// Session is one play session.
type Session struct {
	cfg      *config.GameConfig
	ledger   *game.ProgressLedger
	sm       *game.StateMachine
	events   *event.Dispatcher
	rng      *rand.Rand
	recorder *metrics.Recorder

	em         *ecs.EntityManager
	background *systems.BackgroundSystem
	control    *systems.PlayerControlSystem
	spawn      *systems.SpawnSystem
	boss       *systems.BossSystem
	movement   *systems.MovementSystem
	fire       *systems.EnemyFireSystem
	lifetime   *systems.LifetimeSystem
	combat     *systems.CombatSystem
	level      *systems.LevelSystem

	score          int
	frame          int
	offered        []types.AbilityID
	debugReturn    types.SessionState
	debugRapidFire bool
}

// New creates a session at the title screen. The ledger is shared with
// the caller and outlives the session's levels.
func New(cfg *config.GameConfig, ledger *game.ProgressLedger, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		ledger: ledger,
		sm:     game.NewStateMachine(),
		events: event.NewDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.subscribe()
	return s
}

func (s *Session) subscribe() {
	s.events.SubscribeFunc(event.ScoreAwarded, func(e event.Event) {
		if data, ok := e.Data.(event.ScoreData); ok {
			s.score += data.Amount
		}
	})
	s.events.SubscribeFunc(event.EnemyDefeated, func(e event.Event) {
		s.ledger.RecordEnemyDefeat()
		if data, ok := e.Data.(event.EnemyDefeatedData); ok {
			s.recorder.EnemyDefeated(data.Type)
		}
	})
	s.events.SubscribeFunc(event.BossSpawned, func(event.Event) {
		s.recorder.BossPhase(1)
	})
	s.events.SubscribeFunc(event.BossPhaseChanged, func(e event.Event) {
		if data, ok := e.Data.(event.PhaseData); ok {
			s.recorder.BossPhase(data.To)
		}
	})
	s.events.SubscribeFunc(event.BossDefeated, func(event.Event) {
		s.ledger.RecordBossDefeat()
		s.recorder.BossPhase(0)
	})
	s.events.SubscribeFunc(event.LevelCompleted, func(e event.Event) {
		s.ledger.CompleteLevel()
		if data, ok := e.Data.(event.LevelData); ok {
			s.recorder.LevelCompleted(data.Level)
		}
	})
}

// Events returns the dispatcher, so front-ends can react to combat events
// (sounds, explosions) without polling.
func (s *Session) Events() *event.Dispatcher {
	return s.events
}

// Ledger returns the progress ledger.
func (s *Session) Ledger() *game.ProgressLedger {
	return s.ledger
}

// Config returns the game configuration.
func (s *Session) Config() *config.GameConfig {
	return s.cfg
}

// ResetSession rebuilds the given level from scratch: new entities, score
// zero, counters cleared, and the boss spawned if the level calls for it.
// Locked or unknown levels are rejected and nothing changes. The
// navigation state is left alone.
func (s *Session) ResetSession(level int) bool {
	if !s.ledger.SetCurrentLevel(level) {
		log.Printf("[Session] Level %d is locked", level)
		return false
	}
	lv, _ := s.cfg.Level(level)

	s.ledger.ResetLevelCounters()
	s.score = 0
	s.frame = 0
	s.offered = nil
	s.recorder.BossPhase(0)

	s.em = ecs.NewEntityManager()
	s.background = systems.NewBackgroundSystem(s.em, s.cfg, s.rng)
	s.control = systems.NewPlayerControlSystem(s.em, s.cfg)
	s.spawn = systems.NewSpawnSystem(s.em, s.cfg, s.rng, s.events, s.ledger, lv)
	s.boss = systems.NewBossSystem(s.em, s.cfg, s.rng, s.events)
	s.movement = systems.NewMovementSystem(s.em, s.cfg)
	s.fire = systems.NewEnemyFireSystem(s.em, s.cfg)
	s.lifetime = systems.NewLifetimeSystem(s.em)
	s.combat = systems.NewCombatSystem(s.em, s.cfg, s.events, s.boss, s.spawn)
	s.level = systems.NewLevelSystem(s.em, s.cfg, s.events, s.ledger, level)

	if _, err := entities.NewPlayerShip(s.em, s.cfg); err != nil {
		log.Printf("[Session] Failed to create ship: %v", err)
	}
	if p := s.player(); p != nil {
		p.DebugRapidFire = s.debugRapidFire
	}
	s.spawn.Start()

	log.Printf("[Session] Level %d (%s) started", level, lv.Name)
	return true
}

// AdvanceOneFrame runs the update pipeline once. It does nothing outside
// the Playing state.
func (s *Session) AdvanceOneFrame() {
	if s.sm.Current() != types.StatePlaying || s.em == nil {
		return
	}
	start := time.Now()
	s.frame++

	s.background.Update()

	if s.level.Completed() {
		if !s.level.Celebrating() || s.level.TickCelebration() {
			s.finishLevel()
		}
		return
	}

	s.control.Update()
	s.spawn.Update()
	s.boss.Update()
	s.movement.Update()
	s.fire.Update()
	s.lifetime.Update()
	s.combat.Update()
	s.em.RemoveMarkedEntities()
	s.level.Update()

	if s.level.GameOver() {
		s.gameOver()
	}

	s.recorder.ObserveFrame(time.Since(start))
	s.recorder.SetLiveEntities(s.em.Count())
}

// finishLevel leaves the level after the celebration freeze.
func (s *Session) finishLevel() {
	if s.ledger.CurrentLevel() >= s.cfg.FinalLevel() {
		s.ledger.RecordFinalScore(s.score)
		log.Printf("[Session] Victory with score %d", s.score)
		s.sm.Transition(types.StateVictory)
		return
	}
	s.sm.Transition(types.StateLevelSelect)
}

func (s *Session) gameOver() {
	level := s.ledger.CurrentLevel()
	s.ledger.RecordFinalScore(s.score)
	s.recorder.GameOver(level)
	log.Printf("[Session] Game over on level %d with score %d", level, s.score)
	s.sm.Transition(types.StateGameOver)
}

func (s *Session) player() *components.PlayerComponent {
	if s.em == nil {
		return nil
	}
	id := ecs.FirstWith[*components.PlayerComponent](s.em)
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	return p
}

func (s *Session) playing() bool {
	return s.sm.Current() == types.StatePlaying
}

// SetMove sets the ship's movement direction; each axis is clamped to
// [-1, 1]. Ignored outside Playing.
func (s *Session) SetMove(dx, dy float64) {
	if !s.playing() {
		return
	}
	if p := s.player(); p != nil {
		p.MoveX, p.MoveY = dx, dy
	}
}

// RequestFire latches a shot for the next frame. Ignored outside Playing.
func (s *Session) RequestFire() {
	if !s.playing() {
		return
	}
	if p := s.player(); p != nil {
		p.FireRequested = true
	}
}

// RequestPause pauses a running level.
func (s *Session) RequestPause() bool {
	if !s.playing() {
		return false
	}
	s.stopShip()
	return s.sm.Transition(types.StatePaused)
}

// Resume continues a paused level.
func (s *Session) Resume() bool {
	if s.sm.Current() != types.StatePaused {
		return false
	}
	return s.sm.Transition(types.StatePlaying)
}

// stopShip drops held input so the ship does not drift after a menu.
func (s *Session) stopShip() {
	if p := s.player(); p != nil {
		p.MoveX, p.MoveY = 0, 0
		p.FireRequested = false
	}
}

// RequestAbilityMenu opens the ability interstitial when enough kills were
// charged. It offers up to OfferCount distinct abilities.
func (s *Session) RequestAbilityMenu() bool {
	if !s.playing() || s.level.Completed() || !s.ledger.CanOpenAbilitySelect() {
		return false
	}
	list := s.cfg.Abilities.List
	n := min(s.cfg.Abilities.OfferCount, len(list))
	s.offered = s.offered[:0]
	for _, i := range s.rng.Perm(len(list))[:n] {
		s.offered = append(s.offered, list[i].ID)
	}
	s.stopShip()
	return s.sm.Transition(types.StateAbilitySelect)
}

// OfferedAbilities returns the abilities on offer in the interstitial.
func (s *Session) OfferedAbilities() []config.AbilityConfig {
	out := make([]config.AbilityConfig, 0, len(s.offered))
	for _, id := range s.offered {
		if a, ok := s.cfg.Ability(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// SelectAbility grants one of the offered abilities and resumes play.
// Unknown or not-offered ids are ignored.
func (s *Session) SelectAbility(id types.AbilityID) bool {
	if s.sm.Current() != types.StateAbilitySelect || !s.isOffered(id) {
		return false
	}
	a, ok := s.cfg.Ability(id)
	if !ok {
		return false
	}
	if p := s.player(); p != nil {
		p.ActivateAbility(id, a.Duration)
	}
	log.Printf("[Session] Ability %s selected", id)
	return s.closeAbilityMenu()
}

// SkipAbility closes the interstitial without an ability. The charge is
// spent either way.
func (s *Session) SkipAbility() bool {
	if s.sm.Current() != types.StateAbilitySelect {
		return false
	}
	return s.closeAbilityMenu()
}

func (s *Session) closeAbilityMenu() bool {
	s.ledger.ResetAbilityCounter()
	s.offered = nil
	return s.sm.Transition(types.StatePlaying)
}

func (s *Session) isOffered(id types.AbilityID) bool {
	for _, o := range s.offered {
		if o == id {
			return true
		}
	}
	return false
}

// OpenLevelSelect shows the level list.
func (s *Session) OpenLevelSelect() bool {
	return s.sm.Transition(types.StateLevelSelect)
}

// StartLevel resets the session on level n and starts playing it.
// Locked levels are rejected.
func (s *Session) StartLevel(n int) bool {
	switch s.sm.Current() {
	case types.StateLevelSelect, types.StateGameOver:
	default:
		return false
	}
	if !s.ResetSession(n) {
		return false
	}
	return s.sm.Transition(types.StatePlaying)
}

// StartAt jumps from the title straight into level n. Locked levels are
// refused and leave the session on level select, unless debugging is
// enabled, in which case the level is unlocked first.
func (s *Session) StartAt(n int) bool {
	if !s.OpenLevelSelect() {
		return false
	}
	if !s.ledger.IsLevelUnlocked(n) {
		if !s.cfg.Debug {
			log.Printf("[Session] Level %d is locked; use -debug to start it anyway", n)
			return false
		}
		s.ledger.UnlockLevel(n)
	}
	return s.StartLevel(n)
}

// Retry replays the current level after a game over.
func (s *Session) Retry() bool {
	if s.sm.Current() != types.StateGameOver {
		return false
	}
	return s.StartLevel(s.ledger.CurrentLevel())
}

// ReturnToTitle abandons the run: the ledger goes back to level 1 and the
// level's entities are dropped. Unlocks and best score are kept.
func (s *Session) ReturnToTitle() bool {
	if !s.sm.Transition(types.StateTitle) {
		return false
	}
	s.ledger.ResetRun()
	s.em = nil
	s.score = 0
	s.offered = nil
	return true
}

// OpenDebugMenu opens the debug menu from Playing or Title when debugging
// is enabled in the config.
func (s *Session) OpenDebugMenu() bool {
	if !s.cfg.Debug {
		return false
	}
	from := s.sm.Current()
	if from != types.StatePlaying && from != types.StateTitle {
		return false
	}
	if from == types.StatePlaying {
		s.stopShip()
	}
	s.debugReturn = from
	return s.sm.Transition(types.StateDebugMenu)
}

// CloseDebugMenu returns to the state the menu was opened from.
func (s *Session) CloseDebugMenu() bool {
	if s.sm.Current() != types.StateDebugMenu {
		return false
	}
	return s.sm.Transition(s.debugReturn)
}

func (s *Session) debugAllowed() bool {
	return s.cfg.Debug && s.sm.Current() == types.StateDebugMenu
}

// DebugHeal restores the ship to full health.
func (s *Session) DebugHeal() bool {
	if !s.debugAllowed() || s.em == nil {
		return false
	}
	id := ecs.FirstWith[*components.PlayerComponent](s.em)
	h, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return false
	}
	h.CurrentHealth = h.MaxHealth
	return true
}

// DebugRefillShield restores every shield point.
func (s *Session) DebugRefillShield() bool {
	if !s.debugAllowed() {
		return false
	}
	p := s.player()
	if p == nil {
		return false
	}
	p.Shield = p.MaxShield
	return true
}

// DebugUnlockAll unlocks every level.
func (s *Session) DebugUnlockAll() bool {
	if !s.debugAllowed() {
		return false
	}
	s.ledger.UnlockAll()
	return true
}

// DebugToggleRapidFire flips permanent rapid fire and returns the new value.
// The setting survives level resets.
func (s *Session) DebugToggleRapidFire() bool {
	if !s.debugAllowed() {
		return s.debugRapidFire
	}
	s.debugRapidFire = !s.debugRapidFire
	if p := s.player(); p != nil {
		p.DebugRapidFire = s.debugRapidFire
	}
	return s.debugRapidFire
}

// State returns the navigation state.
func (s *Session) State() types.SessionState {
	return s.sm.Current()
}

// Score returns the score of the current level run.
func (s *Session) Score() int {
	return s.score
}

// Frame returns the number of frames advanced since the last reset.
func (s *Session) Frame() int {
	return s.frame
}

// EnemiesRemaining returns the defeats still needed on this level.
func (s *Session) EnemiesRemaining() int {
	return s.ledger.EnemiesRemaining()
}

// CheckLevelComplete reports whether the current level's goal is met.
func (s *Session) CheckLevelComplete() bool {
	return s.ledger.CheckLevelComplete()
}

// IsGameOver reports whether the ship was destroyed.
func (s *Session) IsGameOver() bool {
	return s.sm.Current() == types.StateGameOver
}

// IsVictory reports whether the final level was cleared.
func (s *Session) IsVictory() bool {
	return s.sm.Current() == types.StateVictory
}

// Snapshot copies the current state for rendering and HUDs.
func (s *Session) Snapshot() Snapshot {
	lv, _ := s.cfg.Level(s.ledger.CurrentLevel())
	snap := Snapshot{
		State:            s.sm.Current(),
		Frame:            s.frame,
		Level:            lv.Number,
		LevelName:        lv.Name,
		Nebula:           lv.Nebula,
		Width:            s.cfg.Playfield.Width,
		Height:           s.cfg.Playfield.Height,
		Score:            s.score,
		BestScore:        s.ledger.BestScore(),
		EnemiesRemaining: s.ledger.EnemiesRemaining(),
		AbilityCharge:    s.ledger.AbilityCharge(),
		CanSelectAbility: s.playing() && s.ledger.CanOpenAbilitySelect(),
		LevelComplete:    s.ledger.CheckLevelComplete(),
		Offered:          append([]types.AbilityID(nil), s.offered...),
	}
	if s.level != nil {
		snap.Celebration = s.level.CelebrationRemaining()
	}
	if s.background != nil && s.em != nil {
		snap.NebulaOffset = s.background.NebulaOffset()
	}
	collect(s.em, &snap)
	return snap
}
