package session

import (
	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// Box is an axis-aligned rectangle centred on (X, Y).
type Box struct {
	X, Y, W, H float64
}

// ShipView is the read-only state of the player ship.
type ShipView struct {
	Box
	Health, MaxHealth int
	Shield, MaxShield int
	Ability           types.AbilityID
	AbilityTimer      int
	AbilityShield     bool
	Flashing          bool
	TripleShot        int // frames left
}

// EnemyView is one regular enemy.
type EnemyView struct {
	Box
	Type              types.EnemyType
	Health, MaxHealth int
}

// ProjectileView is a laser or an enemy projectile.
type ProjectileView struct {
	Box
	Kind     types.ProjectileKind
	Piercing bool
}

// BossView is the read-only state of the boss.
type BossView struct {
	Box
	Health, MaxHealth int
	Phase             int
	Entering          bool
	Frozen            bool
	Beam              types.BeamState
	BeamTargetX       float64
}

// StarView is one background star.
type StarView struct {
	X, Y, Size float64
}

// Snapshot is everything the presentation layer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	State     types.SessionState
	Frame     int
	Level     int
	LevelName string
	Nebula    int
	Width     float64
	Height    float64

	Score            int
	BestScore        int
	EnemiesRemaining int
	AbilityCharge    int
	CanSelectAbility bool
	LevelComplete    bool
	Celebration      int // frames left in the completion freeze

	Ship             *ShipView
	Enemies          []EnemyView
	Lasers           []ProjectileView
	EnemyProjectiles []ProjectileView
	PowerUps         []Box
	Boss             *BossView
	Stars            []StarView
	NebulaOffset     float64
	Offered          []types.AbilityID
}

func boxOf(em *ecs.EntityManager, id ecs.EntityID) (Box, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return Box{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return Box{X: pos.X, Y: pos.Y}, true
	}
	return Box{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}, true
}

// collect fills the entity part of a snapshot. Entities pending removal
// are left out.
func collect(em *ecs.EntityManager, snap *Snapshot) {
	if em == nil {
		return
	}

	if id := ecs.FirstWith[*components.PlayerComponent](em); id != 0 {
		box, _ := boxOf(em, id)
		p, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		snap.Ship = &ShipView{
			Box:           box,
			Health:        h.CurrentHealth,
			MaxHealth:     h.MaxHealth,
			Shield:        p.Shield,
			MaxShield:     p.MaxShield,
			Ability:       p.Ability,
			AbilityTimer:  p.AbilityTimer,
			AbilityShield: p.AbilityShield,
			Flashing:      p.Invulnerable(),
			TripleShot:    p.PowerUpTimer,
		}
	}

	if id := ecs.FirstWith[*components.BossComponent](em); id != 0 {
		box, _ := boxOf(em, id)
		b, _ := ecs.GetComponent[*components.BossComponent](em, id)
		h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		snap.Boss = &BossView{
			Box:         box,
			Health:      h.CurrentHealth,
			MaxHealth:   h.MaxHealth,
			Phase:       b.Phase,
			Entering:    b.Entering,
			Frozen:      b.Frozen(),
			Beam:        b.Beam,
			BeamTargetX: b.BeamTargetX,
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsMarked(id) {
			continue
		}
		box, _ := boxOf(em, id)
		e, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		snap.Enemies = append(snap.Enemies, EnemyView{Box: box, Type: e.Type, Health: h.CurrentHealth, MaxHealth: h.MaxHealth})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		if em.IsMarked(id) {
			continue
		}
		box, _ := boxOf(em, id)
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		view := ProjectileView{Box: box, Kind: p.Kind, Piercing: p.Piercing}
		if p.FromPlayer {
			snap.Lasers = append(snap.Lasers, view)
		} else {
			snap.EnemyProjectiles = append(snap.EnemyProjectiles, view)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpComponent](em) {
		if em.IsMarked(id) {
			continue
		}
		box, _ := boxOf(em, id)
		snap.PowerUps = append(snap.PowerUps, box)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		star, _ := ecs.GetComponent[*components.StarComponent](em, id)
		snap.Stars = append(snap.Stars, StarView{X: pos.X, Y: pos.Y, Size: star.Size})
	}
}
