package systems

import (
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func newTestCombat(w *testWorld, dropper PowerUpDropper) *CombatSystem {
	boss := NewBossSystem(w.em, w.cfg, w.rng, w.events)
	return NewCombatSystem(w.em, w.cfg, w.events, boss, dropper)
}

func TestCombat_NonPiercingLaserStopsAtFirstEnemy(t *testing.T) {
	w := newTestWorld()
	first := w.placeEnemy(t, types.EnemySwarmer, 100, 100)
	second := w.placeEnemy(t, types.EnemySwarmer, 104, 100)
	laser := entities.NewPlayerLaser(w.em, w.cfg, 100, 100, false)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(laser) {
		t.Error("non-piercing laser should be removed after its hit")
	}
	if !w.em.IsMarked(first) {
		t.Error("first enemy should be destroyed")
	}
	if w.em.IsMarked(second) {
		t.Error("second enemy must not be hit by a spent laser")
	}
}

func TestCombat_PiercingLaserHitsOverlappingTargetsEveryFrame(t *testing.T) {
	w := newTestWorld()
	a := w.placeEnemy(t, types.EnemyDestroyer, 100, 100)
	b := w.placeEnemy(t, types.EnemyDestroyer, 104, 100)
	laser := entities.NewPlayerLaser(w.em, w.cfg, 100, 100, true)
	combat := newTestCombat(w, nil)

	combat.Update()
	for _, id := range []ecs.EntityID{a, b} {
		if got := health(t, w.em, id).CurrentHealth; got != 9 {
			t.Errorf("after one pass: enemy %d health = %d, want 9", id, got)
		}
	}

	for i := 0; i < 3; i++ {
		combat.Update()
	}
	if w.em.IsMarked(laser) {
		t.Error("piercing laser must stay live after hits")
	}
	for _, id := range []ecs.EntityID{a, b} {
		if got := health(t, w.em, id).CurrentHealth; got != 6 {
			t.Errorf("after four passes: enemy %d health = %d, want 6", id, got)
		}
	}
}

func TestCombat_LaserKillEmitsDefeatAndScore(t *testing.T) {
	w := newTestWorld()
	w.placeEnemy(t, types.EnemySwarmer, 100, 100)
	entities.NewPlayerLaser(w.em, w.cfg, 100, 100, false)
	dropper := &stubDropper{}

	newTestCombat(w, dropper).Update()

	events := w.events.Drain()
	if got := countEvents(events, event.EnemyDefeated); got != 1 {
		t.Fatalf("EnemyDefeated events = %d, want 1", got)
	}
	for _, e := range events {
		switch data := e.Data.(type) {
		case event.ScoreData:
			if data.Amount != 10 {
				t.Errorf("score = %d, want 10", data.Amount)
			}
		case event.EnemyDefeatedData:
			if data.ByCollision || data.Type != types.EnemySwarmer {
				t.Errorf("unexpected defeat payload %+v", data)
			}
		}
	}
	if dropper.calls != 1 {
		t.Errorf("drop rolls = %d, want 1", dropper.calls)
	}
}

func TestCombat_LaserVsDamageableProjectile(t *testing.T) {
	w := newTestWorld()
	plasma := w.placeProjectile(t, types.ProjectilePlasma, 300, 300)
	laser := entities.NewPlayerLaser(w.em, w.cfg, 300, 300, false)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(laser) {
		t.Error("laser should be consumed on contact")
	}
	if w.em.IsMarked(plasma) {
		t.Error("plasma with 2 HP should survive one hit")
	}
	if got := health(t, w.em, plasma).CurrentHealth; got != 1 {
		t.Errorf("plasma health = %d, want 1", got)
	}
}

func TestCombat_SpentLaserSkipsLaterRules(t *testing.T) {
	w := newTestWorld()
	w.placeEnemy(t, types.EnemySwarmer, 100, 100)
	small := w.placeProjectile(t, types.ProjectileSmall, 100, 100)
	entities.NewPlayerLaser(w.em, w.cfg, 100, 100, false)

	newTestCombat(w, nil).Update()

	if w.em.IsMarked(small) {
		t.Error("projectile was hit by a laser already consumed by an enemy")
	}
}

func TestCombat_ProjectilesHitShipIndependently(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	p1 := w.placeProjectile(t, types.ProjectileSmall, 400, 400)
	p2 := w.placeProjectile(t, types.ProjectileSmall, 402, 400)

	newTestCombat(w, nil).Update()

	if got := player(t, w.em, ship).Shield; got != 5 {
		t.Errorf("shield = %d, want 5", got)
	}
	if !w.em.IsMarked(p1) || !w.em.IsMarked(p2) {
		t.Error("projectiles should be removed on contact")
	}
	if got := countEvents(w.events.Drain(), event.PlayerDamaged); got != 2 {
		t.Errorf("PlayerDamaged events = %d, want 2", got)
	}
}

func TestCombat_PlayerKilledOnce(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	player(t, w.em, ship).Shield = 0
	health(t, w.em, ship).CurrentHealth = 1
	w.placeProjectile(t, types.ProjectileSmall, 400, 400)
	w.placeProjectile(t, types.ProjectileSmall, 402, 400)

	combat := newTestCombat(w, nil)
	combat.Update()
	w.placeProjectile(t, types.ProjectileSmall, 400, 400)
	combat.Update()

	if got := countEvents(w.events.Drain(), event.PlayerKilled); got != 1 {
		t.Errorf("PlayerKilled events = %d, want 1", got)
	}
}

func TestCombat_EnemyRamsShip(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	enemy := w.placeEnemy(t, types.EnemySwarmer, 400, 400)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(enemy) {
		t.Error("ramming enemy should be destroyed")
	}
	if got := player(t, w.em, ship).Shield; got != 6 {
		t.Errorf("shield = %d, want 6", got)
	}
	events := w.events.Drain()
	if countEvents(events, event.ScoreAwarded) != 0 {
		t.Error("ramming must not award score")
	}
	found := false
	for _, e := range events {
		if data, ok := e.Data.(event.EnemyDefeatedData); ok && data.ByCollision {
			found = true
		}
	}
	if !found {
		t.Error("expected EnemyDefeated with ByCollision")
	}
}

func TestCombat_InvulnerableShipTakesNoContactDamage(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 340)
	player(t, w.em, ship).FlashTimer = 5
	enemy := w.placeEnemy(t, types.EnemySwarmer, 400, 340)
	w.placeBoss(400, 300)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(enemy) {
		t.Error("ramming enemy should be destroyed even while the ship flashes")
	}
	if got := player(t, w.em, ship).Shield; got != 7 {
		t.Errorf("shield = %d, want 7", got)
	}
	events := w.events.Drain()
	if got := countEvents(events, event.PlayerDamaged); got != 0 {
		t.Errorf("PlayerDamaged events = %d, want 0", got)
	}
	if got := countEvents(events, event.EnemyDefeated); got != 1 {
		t.Errorf("EnemyDefeated events = %d, want 1", got)
	}
}

func TestCombat_MineContact(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	player(t, w.em, ship).Shield = 0
	mine := w.placeProjectile(t, types.ProjectileMine, 400, 400)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(mine) {
		t.Error("mine should be removed on contact")
	}
	if got := health(t, w.em, ship).CurrentHealth; got != 2 {
		t.Errorf("health = %d, want 2 after a 3-damage mine", got)
	}

	// shield points soak the same hit
	w = newTestWorld()
	ship = w.placeShip(t, 400, 400)
	w.placeProjectile(t, types.ProjectileMine, 400, 400)
	newTestCombat(w, nil).Update()
	if got := player(t, w.em, ship).Shield; got != 4 {
		t.Errorf("shield = %d, want 4", got)
	}
}

func TestCombat_BossContactDamage(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 340)
	boss := w.placeBoss(400, 300)

	newTestCombat(w, nil).Update()

	if got := player(t, w.em, ship).Shield; got != 4 {
		t.Errorf("shield = %d, want 4", got)
	}
	if w.em.IsMarked(boss) || health(t, w.em, boss).CurrentHealth != w.cfg.Boss.Health {
		t.Error("boss must not be damaged or removed by contact")
	}
}

func TestCombat_LaserHitsBoss(t *testing.T) {
	w := newTestWorld()
	boss := w.placeBoss(400, 100)
	plain := entities.NewPlayerLaser(w.em, w.cfg, 400, 100, false)
	piercing := entities.NewPlayerLaser(w.em, w.cfg, 410, 100, true)
	combat := newTestCombat(w, nil)

	combat.Update()
	combat.Update()

	if !w.em.IsMarked(plain) {
		t.Error("plain laser should be consumed by the boss")
	}
	if w.em.IsMarked(piercing) {
		t.Error("piercing laser should survive the boss")
	}
	// plain laser once, piercing laser on both frames
	if got := health(t, w.em, boss).CurrentHealth; got != w.cfg.Boss.Health-3 {
		t.Errorf("boss health = %d, want %d", got, w.cfg.Boss.Health-3)
	}
}

func TestCombat_PowerUpPickup(t *testing.T) {
	w := newTestWorld()
	ship := w.placeShip(t, 400, 400)
	pu := entities.NewPowerUp(w.em, w.cfg, 400, 400)

	newTestCombat(w, nil).Update()

	if !w.em.IsMarked(pu) {
		t.Error("power-up should be removed on pickup")
	}
	if got := player(t, w.em, ship).PowerUpTimer; got != w.cfg.PowerUp.Duration {
		t.Errorf("PowerUpTimer = %d, want %d", got, w.cfg.PowerUp.Duration)
	}
	if countEvents(w.events.Drain(), event.PowerUpCollected) != 1 {
		t.Error("expected one PowerUpCollected event")
	}
}

func TestCombat_BeamCapsule(t *testing.T) {
	tests := []struct {
		name       string
		shipX      float64
		due        bool
		wantShield int
	}{
		{"under the beam on a damage frame", 400, true, 6},
		{"under the beam between ticks", 400, false, 7},
		{"outside the capsule", 100, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			ship := w.placeShip(t, tt.shipX, 500)
			id := w.placeBoss(400, 100)
			boss, _ := ecs.GetComponent[*components.BossComponent](w.em, id)
			boss.Beam = types.BeamActive
			boss.BeamTargetX = 400
			boss.BeamDamageDue = tt.due

			newTestCombat(w, nil).Update()

			if got := player(t, w.em, ship).Shield; got != tt.wantShield {
				t.Errorf("shield = %d, want %d", got, tt.wantShield)
			}
		})
	}
}
