package systems

import (
	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
)

// PowerUpDropper rolls the per-kill power-up drop.
type PowerUpDropper interface {
	TryDropPowerUp(x, y float64) bool
}

// BossDamager applies damage to the boss through its phase machine.
type BossDamager interface {
	ApplyDamage(id ecs.EntityID, amount int) bool
}

// CombatSystem resolves every collision of a frame, after all entities
// have moved. Rules run in a fixed order:
//
//  1. player lasers vs boss
//  2. player lasers vs enemies
//  3. player lasers vs enemy projectiles
//  4. enemy projectiles vs ship
//  5. enemy bodies vs ship
//  6. boss body vs ship
//  7. power-up pickup
//  8. boss beam vs ship
//
// Entities destroyed earlier in the pass are skipped by later tests.
// Non-piercing lasers are consumed by their first hit; piercing lasers
// survive and damage each overlapping target once per pass.
type CombatSystem struct {
	em      *ecs.EntityManager
	cfg     *config.GameConfig
	events  *event.Dispatcher
	boss    BossDamager
	dropper PowerUpDropper

	playerKilled bool
}

// NewCombatSystem creates the resolver.
func NewCombatSystem(em *ecs.EntityManager, cfg *config.GameConfig, events *event.Dispatcher,
	boss BossDamager, dropper PowerUpDropper) *CombatSystem {
	return &CombatSystem{em: em, cfg: cfg, events: events, boss: boss, dropper: dropper}
}

// frameBodies are the entity groups of one pass, in creation order.
type frameBodies struct {
	ship        body
	hasShip     bool
	lasers      []body
	enemies     []body
	projectiles []body
	powerUps    []body
	boss        body
	hasBoss     bool
}

func (s *CombatSystem) collect() frameBodies {
	var f frameBodies

	if id := ecs.FirstWith[*components.PlayerComponent](s.em); id != 0 {
		f.ship, f.hasShip = getBody(s.em, id)
	}
	if id := ecs.FirstWith[*components.BossComponent](s.em); id != 0 {
		f.boss, f.hasBoss = getBody(s.em, id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		b, ok := getBody(s.em, id)
		if !ok || s.em.IsMarked(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if proj.FromPlayer {
			f.lasers = append(f.lasers, b)
		} else {
			f.projectiles = append(f.projectiles, b)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		if b, ok := getBody(s.em, id); ok && !s.em.IsMarked(id) {
			f.enemies = append(f.enemies, b)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpComponent](s.em) {
		if b, ok := getBody(s.em, id); ok && !s.em.IsMarked(id) {
			f.powerUps = append(f.powerUps, b)
		}
	}
	return f
}

// Update runs one resolution pass.
func (s *CombatSystem) Update() {
	f := s.collect()
	for _, l := range f.lasers {
		if laser, ok := ecs.GetComponent[*components.ProjectileComponent](s.em, l.id); ok {
			laser.ClearHits()
		}
	}

	s.lasersVsBoss(f)
	s.lasersVsEnemies(f)
	s.lasersVsProjectiles(f)
	if !f.hasShip {
		return
	}
	s.projectilesVsShip(f)
	s.enemiesVsShip(f)
	s.bossVsShip(f)
	s.pickUpPowerUps(f)
	s.beamVsShip(f)
}

// Reset clears per-level state.
func (s *CombatSystem) Reset() {
	s.playerKilled = false
}

func (s *CombatSystem) alive(id ecs.EntityID) bool {
	return !s.em.IsMarked(id)
}

// laserHit handles the laser side of a hit: piercing lasers remember the
// target, others are destroyed. It reports whether the laser is spent.
func (s *CombatSystem) laserHit(laser *components.ProjectileComponent, laserID, target ecs.EntityID) (spent bool) {
	if laser.Piercing {
		laser.RecordHit(target)
		return false
	}
	s.em.DestroyEntity(laserID)
	return true
}

func (s *CombatSystem) lasersVsBoss(f frameBodies) {
	if !f.hasBoss {
		return
	}
	for _, l := range f.lasers {
		if !s.alive(l.id) || !s.alive(f.boss.id) {
			continue
		}
		laser, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, l.id)
		if laser.AlreadyHit(f.boss.id) || !l.overlaps(f.boss) {
			continue
		}
		s.boss.ApplyDamage(f.boss.id, laser.Damage)
		s.laserHit(laser, l.id, f.boss.id)
	}
}

func (s *CombatSystem) lasersVsEnemies(f frameBodies) {
	for _, l := range f.lasers {
		if !s.alive(l.id) {
			continue
		}
		laser, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, l.id)
		for _, e := range f.enemies {
			if !s.alive(e.id) || laser.AlreadyHit(e.id) || !l.overlaps(e) {
				continue
			}
			health, _ := ecs.GetComponent[*components.HealthComponent](s.em, e.id)
			killed := health != nil && health.ApplyDamage(laser.Damage)
			spent := s.laserHit(laser, l.id, e.id)
			if killed {
				s.defeatEnemy(e, false)
				s.events.Dispatch(event.Event{Type: event.ScoreAwarded, Data: event.ScoreData{Amount: s.cfg.Rules.KillScore}})
				if s.dropper != nil {
					s.dropper.TryDropPowerUp(e.pos.X, e.pos.Y)
				}
			}
			if spent {
				break
			}
		}
	}
}

func (s *CombatSystem) defeatEnemy(e body, byCollision bool) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, e.id)
	s.em.DestroyEntity(e.id)
	data := event.EnemyDefeatedData{X: e.pos.X, Y: e.pos.Y, ByCollision: byCollision}
	if enemy != nil {
		data.Type = enemy.Type
	}
	s.events.Dispatch(event.Event{Type: event.EnemyDefeated, Data: data})
}

// lasersVsProjectiles lets lasers shoot down enemy projectiles. Multi-hit
// projectiles may survive; a non-piercing laser is consumed either way.
func (s *CombatSystem) lasersVsProjectiles(f frameBodies) {
	for _, l := range f.lasers {
		if !s.alive(l.id) {
			continue
		}
		laser, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, l.id)
		for _, p := range f.projectiles {
			if !s.alive(p.id) || laser.AlreadyHit(p.id) || !l.overlaps(p) {
				continue
			}
			if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, p.id); !ok || health.ApplyDamage(laser.Damage) {
				s.em.DestroyEntity(p.id)
			}
			if s.laserHit(laser, l.id, p.id) {
				break
			}
		}
	}
}

func (s *CombatSystem) damageShip(f frameBodies, amount int, source string) {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, f.ship.id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.em, f.ship.id)
	if player == nil || health == nil {
		return
	}
	killed := player.TakeDamage(health, amount)
	s.events.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{Amount: amount, Source: source}})
	if killed && !s.playerKilled {
		s.playerKilled = true
		s.events.Dispatch(event.Event{Type: event.PlayerKilled})
	}
}

func (s *CombatSystem) playerComponent(f frameBodies) *components.PlayerComponent {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, f.ship.id)
	return player
}

// projectilesVsShip: every overlapping projectile hits once and is removed.
func (s *CombatSystem) projectilesVsShip(f frameBodies) {
	for _, p := range f.projectiles {
		if !s.alive(p.id) || !p.overlaps(f.ship) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, p.id)
		s.em.DestroyEntity(p.id)
		s.damageShip(f, proj.Damage, proj.Kind.String())
	}
}

// enemiesVsShip: a ramming enemy is always destroyed; it deals contact
// damage unless the damage flash is running.
func (s *CombatSystem) enemiesVsShip(f frameBodies) {
	player := s.playerComponent(f)
	if player == nil {
		return
	}
	for _, e := range f.enemies {
		if !s.alive(e.id) || !e.overlaps(f.ship) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, e.id)
		if s.cfg.Rules.CollisionCountsAsDefeat {
			s.defeatEnemy(e, true)
		} else {
			s.em.DestroyEntity(e.id)
		}
		if player.Invulnerable() {
			continue
		}
		damage := s.cfg.Rules.EnemyContactDamage
		if enemy != nil {
			damage = enemy.ContactDamage
		}
		s.damageShip(f, damage, "collision")
	}
}

// bossVsShip: the boss is neither damaged nor removed by contact.
func (s *CombatSystem) bossVsShip(f frameBodies) {
	if !f.hasBoss || !s.alive(f.boss.id) || !f.boss.overlaps(f.ship) {
		return
	}
	if player := s.playerComponent(f); player == nil || player.Invulnerable() {
		return
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](s.em, f.boss.id)
	s.damageShip(f, boss.ContactDamage, "boss")
}

func (s *CombatSystem) pickUpPowerUps(f frameBodies) {
	for _, p := range f.powerUps {
		if !s.alive(p.id) || !p.overlaps(f.ship) {
			continue
		}
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.em, p.id)
		if player := s.playerComponent(f); player != nil {
			player.PowerUpTimer = pu.Duration
		}
		s.em.DestroyEntity(p.id)
		s.events.Dispatch(event.Event{Type: event.PowerUpCollected})
	}
}

// beamVsShip deals periodic damage to a ship inside the beam capsule.
func (s *CombatSystem) beamVsShip(f frameBodies) {
	if !f.hasBoss || !s.alive(f.boss.id) {
		return
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](s.em, f.boss.id)
	if !boss.BeamFiring() || !boss.BeamDamageDue {
		return
	}
	ax, ay := f.boss.pos.X, f.boss.pos.Y+f.boss.col.HalfHeight()
	dist := distanceToSegment(f.ship.pos.X, f.ship.pos.Y, ax, ay, boss.BeamTargetX, s.cfg.Playfield.Height)
	if dist <= s.cfg.Boss.Beam.Radius {
		s.damageShip(f, s.cfg.Boss.Beam.Damage, "beam")
	}
}
