package geom

import (
	"math"
	"testing"
)

type fakeTarget struct {
	x, y  float64
	alive bool
}

func (t fakeTarget) Position() (float64, float64) { return t.x, t.y }
func (t fakeTarget) Alive() bool                  { return t.alive }

// referenceAngleDiff recomputes the angular difference independently of the
// production normalization loop.
func referenceAngleDiff(originX, originY, targetX, targetY, lookAngle float64) float64 {
	raw := math.Atan2(targetY-originY, targetX-originX) - lookAngle
	// Wrap via mod arithmetic instead of the loop used in production code.
	wrapped := math.Mod(raw+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

func TestIsInCone_AgreesWithReference(t *testing.T) {
	facings := []Facing{FacingRight, FacingDown, FacingLeft, FacingUp}
	halfCone := (DefaultConeDegrees / 2) * (math.Pi / 180)

	// Sweep target positions on a circle around the origin.
	for _, f := range facings {
		for deg := 0; deg < 360; deg += 5 {
			rad := float64(deg) * math.Pi / 180
			tx := 100 + 50*math.Cos(rad)
			ty := 100 + 50*math.Sin(rad)

			got := IsInCone(100, 100, f, tx, ty, DefaultConeDegrees)
			want := math.Abs(referenceAngleDiff(100, 100, tx, ty, f.Angle())) <= halfCone
			if got != want {
				t.Errorf("facing %s, target at %d°: IsInCone = %v, reference = %v", f, deg, got, want)
			}
		}
	}
}

func TestIsInCone_BoundaryInclusive(t *testing.T) {
	// A 180° cone puts its edge at exactly ±π/2, so a perpendicular target
	// sits precisely on the boundary with no rounding involved.
	cases := []struct {
		facing Facing
		tx, ty float64
	}{
		{FacingRight, 100, 110},
		{FacingDown, 110, 100},
		{FacingLeft, 100, 110},
		{FacingUp, 110, 100},
	}
	for _, c := range cases {
		if !IsInCone(100, 100, c.facing, c.tx, c.ty, 180) {
			t.Errorf("facing %s: target on the exact half-cone boundary should be inside", c.facing)
		}
	}
}

func TestIsInCone_BehindIsOutside(t *testing.T) {
	// Directly behind the facing direction.
	if IsInCone(100, 100, FacingRight, 50, 100, DefaultConeDegrees) {
		t.Error("target directly behind should be outside the cone")
	}
	if IsInCone(100, 100, FacingUp, 100, 150, DefaultConeDegrees) {
		t.Error("target below an up-facing attacker should be outside the cone")
	}
}

func TestTargetsInCone_FiltersDistanceConeAndLiveness(t *testing.T) {
	const cell = 32.0
	targets := []fakeTarget{
		{x: 32, y: 0, alive: true},    // one cell right: in reach, in cone
		{x: 96, y: 0, alive: true},    // three cells right: out of reach
		{x: -32, y: 0, alive: true},   // behind: out of cone
		{x: 32, y: 0, alive: false},   // dead, same geometry as first
		{x: 32, y: 32, alive: true},   // diagonal: in reach but 45° off, outside the 37.5° half-cone
	}

	hits := TargetsInCone(0, 0, FacingRight, targets, cell, DefaultReachCells, DefaultConeDegrees)

	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1 (%v)", len(hits), hits)
	}
	if hits[0].x != 32 || hits[0].y != 0 || !hits[0].alive {
		t.Errorf("unexpected hit %+v", hits[0])
	}
}

func TestTargetsInCone_DeadExcludedEvenWhenClose(t *testing.T) {
	targets := []fakeTarget{{x: 32, y: 0, alive: false}}
	hits := TargetsInCone(0, 0, FacingRight, targets, 32, DefaultReachCells, DefaultConeDegrees)
	if len(hits) != 0 {
		t.Errorf("dead target was hit: %v", hits)
	}
}

func TestTargetsInCone_Reproducible(t *testing.T) {
	targets := []fakeTarget{
		{x: 32, y: 0, alive: true},
		{x: 32, y: 16, alive: true},
		{x: 0, y: 32, alive: true},
	}
	a := TargetsInCone(0, 0, FacingRight, targets, 32, DefaultReachCells, DefaultConeDegrees)
	b := TargetsInCone(0, 0, FacingRight, targets, 32, DefaultReachCells, DefaultConeDegrees)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic result: %d vs %d hits", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("hit %d differs between identical calls", i)
		}
	}
}

func TestFacingAngles(t *testing.T) {
	cases := []struct {
		facing Facing
		want   float64
	}{
		{FacingRight, 0},
		{FacingDown, math.Pi / 2},
		{FacingLeft, math.Pi},
		{FacingUp, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := c.facing.Angle(); got != c.want {
			t.Errorf("%s.Angle() = %f, want %f", c.facing, got, c.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %f, want 5", d)
	}
}
