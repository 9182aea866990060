package geom

import "math"

// Default melee parameters: a 75-degree total cone reaching 1.5 cells.
const (
	DefaultConeDegrees = 75.0
	DefaultReachCells  = 1.5
)

// Facing is one of the four cardinal directions an entity can look in.
type Facing int

const (
	FacingRight Facing = iota
	FacingDown
	FacingLeft
	FacingUp
)

// Angle returns the fixed look angle in radians for a facing.
// Screen coordinates: +y points down, so "up" is -π/2.
func (f Facing) Angle() float64 {
	switch f {
	case FacingDown:
		return math.Pi / 2
	case FacingLeft:
		return math.Pi
	case FacingUp:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	}
	return "unknown"
}

// Target is anything that can be hit by a melee sweep. Position returns the
// top-left corner of the entity's cell; centers are derived from the cell size.
type Target interface {
	Position() (x, y float64)
	Alive() bool
}

// IsInCone reports whether the target center lies within the attack cone
// opened around the facing angle at the origin center. The angular difference
// is normalized into (-π, π] before comparison; the ±half-cone boundary is
// inclusive.
func IsInCone(originX, originY float64, facing Facing, targetX, targetY, coneDegrees float64) bool {
	dx := targetX - originX
	dy := targetY - originY
	diff := math.Atan2(dy, dx) - facing.Angle()

	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}

	halfCone := (coneDegrees / 2) * (math.Pi / 180)
	return math.Abs(diff) <= halfCone
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// TargetsInCone returns the live targets within both reach and cone of an
// attacker at (x, y) facing the given direction. Positions are top-left cell
// corners; both attacker and targets are measured center-to-center using
// cellSize. Dead targets are excluded regardless of geometry. The result
// preserves the input order, so for identical inputs the output is identical.
func TargetsInCone[T Target](x, y float64, facing Facing, targets []T, cellSize, reachCells, coneDegrees float64) []T {
	originX := x + cellSize/2
	originY := y + cellSize/2
	reach := reachCells * cellSize

	var hits []T
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		tx, ty := t.Position()
		cx := tx + cellSize/2
		cy := ty + cellSize/2

		if Distance(originX, originY, cx, cy) > reach {
			continue
		}
		if !IsInCone(originX, originY, facing, cx, cy, coneDegrees) {
			continue
		}
		hits = append(hits, t)
	}
	return hits
}
