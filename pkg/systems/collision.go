package systems

import (
	"math"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
)

// checkAABBCollision reports whether two centred boxes overlap. Touching
// edges do not count: the overlap must be strictly positive on both axes.
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	return math.Abs(pos1.X-pos2.X) < (col1.Width+col2.Width)/2 &&
		math.Abs(pos1.Y-pos2.Y) < (col1.Height+col2.Height)/2
}

// body is the position and hitbox of one entity, fetched once per pass.
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
}

func getBody(em *ecs.EntityManager, id ecs.EntityID) (body, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return body{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return body{}, false
	}
	return body{id: id, pos: pos, col: col}, true
}

func (b body) overlaps(other body) bool {
	return checkAABBCollision(b.pos, b.col, other.pos, other.col)
}

// countLive returns the number of unmarked entities carrying T.
func countLive[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if !em.IsMarked(id) {
			n++
		}
	}
	return n
}

// distanceToSegment returns the distance from (px, py) to the segment
// (ax, ay)-(bx, by).
func distanceToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
