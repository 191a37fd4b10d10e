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

// attackUnlockPhase is the first phase in which each attack is used.
var attackUnlockPhase = map[types.BossAttack]int{
	types.BossAttackLasers: 1,
	types.BossAttackPlasma: 2,
	types.BossAttackSpread: 3,
	types.BossAttackBeam:   4,
	types.BossAttackMines:  5,
}

const (
	plasmaSideShotPhase = 3
	spreadMuzzleRadius  = 30.0
)

// AttackEnabled reports whether attack is part of phase's pattern set.
// Higher phases enable strictly more attacks.
func AttackEnabled(attack types.BossAttack, phase int) bool {
	unlock, ok := attackUnlockPhase[attack]
	return ok && phase >= unlock
}

// BossSystem runs the boss phase machine: entry descent, per-phase
// movement and attacks, the beam sub-state and phase transitions.
type BossSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	rng    *rand.Rand
	events *event.Dispatcher
}

// NewBossSystem creates the system.
func NewBossSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand, events *event.Dispatcher) *BossSystem {
	return &BossSystem{em: em, cfg: cfg, rng: rng, events: events}
}

// Update advances the boss by one frame. Nothing happens without a boss.
func (s *BossSystem) Update() {
	id := ecs.FirstWith[*components.BossComponent](s.em)
	if id == 0 {
		return
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](s.em, id)
	b, ok := getBody(s.em, id)
	if !ok {
		return
	}

	if boss.Entering {
		b.pos.Y += s.cfg.Boss.Speed * s.cfg.Boss.EntrySpeed
		if b.pos.Y >= boss.RestY {
			b.pos.Y = boss.RestY
			boss.Entering = false
		}
		return
	}

	if boss.Frozen() {
		boss.TransitionTimer--
		return
	}

	s.move(boss, b)
	s.tickCooldowns(boss)
	s.attack(boss, b)
	s.updateBeam(boss)
}

func (s *BossSystem) move(boss *components.BossComponent, b body) {
	phase := s.cfg.Boss.Phase(boss.Phase)
	speed := s.cfg.Boss.Speed * phase.SpeedMultiplier
	switch boss.Beam {
	case types.BeamCharging:
		speed *= s.cfg.Boss.Beam.ChargeSlowdown
	case types.BeamActive:
		speed = 0
	}

	halfW := b.col.HalfWidth()
	b.pos.X += speed * boss.Direction
	if b.pos.X <= halfW || b.pos.X >= s.cfg.Playfield.Width-halfW {
		boss.Direction = -boss.Direction
	}
	b.pos.X = math.Max(halfW, math.Min(s.cfg.Playfield.Width-halfW, b.pos.X))

	boss.MoveClock++
	if phase.BobAmplitude > 0 {
		b.pos.Y += math.Sin(float64(boss.MoveClock)*phase.BobFrequency) * phase.BobAmplitude
	}
}

func (s *BossSystem) tickCooldowns(boss *components.BossComponent) {
	for attack, cd := range boss.Cooldowns {
		if cd > 0 {
			boss.Cooldowns[attack] = cd - 1
		}
	}
}

// cooldown scales a base cooldown by the current phase multiplier.
func (s *BossSystem) cooldown(boss *components.BossComponent, base int) int {
	return int(math.Round(float64(base) * s.cfg.Boss.Phase(boss.Phase).CooldownMultiplier))
}

func (s *BossSystem) ready(boss *components.BossComponent, attack types.BossAttack) bool {
	return AttackEnabled(attack, boss.Phase) && boss.Cooldowns[attack] <= 0
}

func (s *BossSystem) attack(boss *components.BossComponent, b body) {
	bc := s.cfg.Boss
	x, bottom := b.pos.X, b.pos.Y+b.col.HalfHeight()

	if s.ready(boss, types.BossAttackLasers) {
		boss.Cooldowns[types.BossAttackLasers] = s.cooldown(boss, bc.LaserCooldown)
		speed := s.projectileSpeed(types.ProjectileLaser)
		quarter := b.col.Width / 4
		for _, dx := range []float64{-quarter, 0, quarter} {
			s.spawn(types.ProjectileLaser, x+dx, bottom, 0, speed)
		}
	}

	if s.ready(boss, types.BossAttackPlasma) {
		boss.Cooldowns[types.BossAttackPlasma] = s.cooldown(boss, bc.PlasmaCooldown)
		speed := s.projectileSpeed(types.ProjectilePlasma)
		vx, vy := s.aimAtPlayer(x, bottom, speed)
		s.spawn(types.ProjectilePlasma, x, bottom, vx, vy)
		if boss.Phase >= plasmaSideShotPhase {
			third := b.col.Width / 3
			y := b.pos.Y + b.col.Height/3
			s.spawn(types.ProjectilePlasma, x-third, y, 0, speed)
			s.spawn(types.ProjectilePlasma, x+third, y, 0, speed)
		}
	}

	if s.ready(boss, types.BossAttackSpread) {
		boss.Cooldowns[types.BossAttackSpread] = s.cooldown(boss, bc.SpreadCooldown)
		speed := s.projectileSpeed(types.ProjectileSmall)
		n := bc.SpreadCount
		for i := 0; i < n; i++ {
			// fan across the lower half circle
			angle := (float64(i) + 0.5) / float64(n) * math.Pi
			cos, sin := math.Cos(angle), math.Sin(angle)
			s.spawn(types.ProjectileSmall, x+cos*spreadMuzzleRadius, bottom, cos*speed, sin*speed)
		}
	}

	if s.ready(boss, types.BossAttackMines) {
		boss.Cooldowns[types.BossAttackMines] = s.cooldown(boss, bc.MineCooldown)
		s.spawn(types.ProjectileMine, x, bottom, 0, 0)
	}
}

// updateBeam steps the beam sub-state machine: Idle -> Charging -> Active -> Idle.
func (s *BossSystem) updateBeam(boss *components.BossComponent) {
	beam := s.cfg.Boss.Beam
	boss.BeamDamageDue = false

	switch boss.Beam {
	case types.BeamIdle:
		if !AttackEnabled(types.BossAttackBeam, boss.Phase) {
			return
		}
		if boss.BeamCooldown > 0 {
			boss.BeamCooldown--
			return
		}
		boss.Beam = types.BeamCharging
		boss.BeamTimer = beam.ChargeFrames
		boss.BeamTargetX = s.rng.Float64() * s.cfg.Playfield.Width
	case types.BeamCharging:
		boss.BeamTimer--
		if boss.BeamTimer <= 0 {
			boss.Beam = types.BeamActive
			boss.BeamTimer = beam.ActiveFrames
			boss.BeamTick = 0
		}
	case types.BeamActive:
		boss.BeamDamageDue = boss.BeamTick%beam.TickFrames == 0
		boss.BeamTick++
		boss.BeamTimer--
		if boss.BeamTimer <= 0 {
			boss.Beam = types.BeamIdle
			boss.BeamCooldown = beam.Cooldown
		}
	}
}

func (s *BossSystem) projectileSpeed(kind types.ProjectileKind) float64 {
	stats, _ := s.cfg.ProjectileStats(kind)
	return stats.Speed
}

// aimAtPlayer returns a velocity of the given speed pointing from (x, y) to
// the ship, or straight down when there is no ship.
func (s *BossSystem) aimAtPlayer(x, y, speed float64) (float64, float64) {
	id := ecs.FirstWith[*components.PlayerComponent](s.em)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if id == 0 || !ok {
		return 0, speed
	}
	dx, dy := pos.X-x, pos.Y-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}

func (s *BossSystem) spawn(kind types.ProjectileKind, x, y, vx, vy float64) {
	if _, err := entities.NewEnemyProjectile(s.em, s.cfg, kind, x, y, vx, vy); err != nil {
		log.Printf("[BossSystem] Failed to spawn %s: %v", kind, err)
	}
}

// ApplyDamage hits the boss and drives phase transitions.
//
// Every threshold the health ratio falls to or below for the first time is
// marked crossed; if the deepest newly crossed threshold belongs to a later
// phase, the boss jumps to it and freezes for TransitionFrames. A running
// beam is cancelled by the freeze. Phase never decreases. On a kill the
// boss is marked for removal and BossDefeated is dispatched.
func (s *BossSystem) ApplyDamage(id ecs.EntityID, amount int) (killed bool) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.em, id)
	if !ok || boss.Defeated {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return false
	}

	killed = health.ApplyDamage(amount)
	ratio := health.Ratio()

	deepest := 0
	for i, phase := range s.cfg.Boss.Phases {
		if i >= len(boss.Crossed) || boss.Crossed[i] {
			continue
		}
		if ratio <= phase.Threshold {
			boss.Crossed[i] = true
			deepest = i + 1
		}
	}

	if killed {
		boss.Defeated = true
		s.em.DestroyEntity(id)
		log.Printf("[BossSystem] Boss %d defeated in phase %d", id, boss.Phase)
		s.events.Dispatch(event.Event{Type: event.BossDefeated})
		s.events.Dispatch(event.Event{Type: event.ScoreAwarded, Data: event.ScoreData{Amount: s.cfg.Boss.DefeatBonus}})
		return true
	}

	if deepest > boss.Phase {
		from := boss.Phase
		boss.Phase = deepest
		boss.TransitionTimer = s.cfg.Boss.TransitionFrames
		if boss.Beam != types.BeamIdle {
			boss.Beam = types.BeamIdle
			boss.BeamTimer = 0
			boss.BeamCooldown = s.cfg.Boss.Beam.Cooldown
		}
		boss.BeamDamageDue = false
		log.Printf("[BossSystem] Boss phase %d -> %d (health %d/%d)", from, deepest, health.CurrentHealth, health.MaxHealth)
		s.events.Dispatch(event.Event{Type: event.BossPhaseChanged, Data: event.PhaseData{From: from, To: deepest}})
	}
	return false
}
