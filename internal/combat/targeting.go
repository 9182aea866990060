package combat

import (
	"quizdungeon/internal/geom"
	"quizdungeon/internal/world"
)

// AcquireTarget runs the melee cone over the room's enemies from the
// player's position and facing, and returns the nearest live hit, or nil when
// the sweep misses. Nearest-first with input order as tie-break keeps the
// pick reproducible.
func AcquireTarget(p *world.Player, enemies []*world.Enemy) *world.Enemy {
	hits := geom.TargetsInCone(p.X, p.Y, p.Facing, enemies,
		world.CellSize, geom.DefaultReachCells, geom.DefaultConeDegrees)
	if len(hits) == 0 {
		return nil
	}

	originX := p.X + world.CellSize/2
	originY := p.Y + world.CellSize/2

	best := hits[0]
	bestDist := distanceTo(originX, originY, best)
	for _, h := range hits[1:] {
		if d := distanceTo(originX, originY, h); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

func distanceTo(x, y float64, e *world.Enemy) float64 {
	ex, ey := e.Position()
	return geom.Distance(x, y, ex+world.CellSize/2, ey+world.CellSize/2)
}
