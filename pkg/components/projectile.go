package components

import (
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// ProjectileComponent is shared by player lasers and enemy projectiles.
// Damageable enemy projectiles also carry a HealthComponent.
type ProjectileComponent struct {
	FromPlayer bool
	Kind       types.ProjectileKind // enemy projectiles only
	Damage     int

	// Piercing lasers pass through targets. The hit set keeps one pass
	// from damaging a target twice; it is cleared every frame, so a laser
	// still overlapping a target hits it again on the next frame.
	Piercing bool
	hits     map[ecs.EntityID]struct{}

	// Spores weave sideways; ArcAge drives the sine term.
	Arc    bool
	ArcAge int
}

// AlreadyHit reports whether a piercing laser has damaged target in the
// current pass.
func (p *ProjectileComponent) AlreadyHit(target ecs.EntityID) bool {
	_, ok := p.hits[target]
	return ok
}

// RecordHit remembers target so a piercing laser does not hit it again in
// this pass.
func (p *ProjectileComponent) RecordHit(target ecs.EntityID) {
	if p.hits == nil {
		p.hits = make(map[ecs.EntityID]struct{})
	}
	p.hits[target] = struct{}{}
}

// ClearHits forgets the targets of the previous pass.
func (p *ProjectileComponent) ClearHits() {
	for id := range p.hits {
		delete(p.hits, id)
	}
}
