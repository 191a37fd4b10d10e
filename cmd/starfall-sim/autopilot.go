package main

import (
	"math"

	"github.com/leoprimesmatrix/Starfall/pkg/session"
)

// dodgeRange is how close an enemy projectile may come vertically before
// the autopilot steps sideways.
const dodgeRange = 80.0

// steer picks a movement direction for the ship: line up under the boss or
// the lowest enemy, and step away from any projectile about to hit.
func steer(snap session.Snapshot) (dx, dy float64) {
	if snap.Ship == nil {
		return 0, 0
	}
	ship := snap.Ship

	targetX, ok := target(snap)
	if ok {
		switch diff := targetX - ship.X; {
		case diff > 4:
			dx = 1
		case diff < -4:
			dx = -1
		}
	}

	for _, p := range snap.EnemyProjectiles {
		if p.Y > ship.Y || ship.Y-p.Y > dodgeRange {
			continue
		}
		if math.Abs(p.X-ship.X) > (p.W+ship.W)/2 {
			continue
		}
		if p.X < ship.X {
			dx = 1
		} else {
			dx = -1
		}
		break
	}

	// stay near the bottom third so there is time to react
	if ship.Y < snap.Height*2/3 {
		dy = 1
	}
	return dx, dy
}

// target returns the x coordinate to line up with. The boss wins over
// regular enemies; among enemies the one closest to the ship is chosen.
func target(snap session.Snapshot) (float64, bool) {
	if snap.Boss != nil && !snap.Boss.Entering {
		return snap.Boss.X, true
	}
	best, found := 0.0, false
	for _, e := range snap.Enemies {
		if e.Y < 0 {
			continue
		}
		if !found || e.Y > best {
			best = e.Y
			found = true
		}
	}
	if !found {
		return 0, false
	}
	for _, e := range snap.Enemies {
		if e.Y == best {
			return e.X, true
		}
	}
	return 0, false
}
