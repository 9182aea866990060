// Package world holds the entities the combat engine reads and mutates:
// the player (position, facing, health) and hostile enemies.
package world

import "quizdungeon/internal/geom"

// PlayerMaxHP is the fixed health ceiling; health is clamped to
// [0, PlayerMaxHP] on every write.
const PlayerMaxHP = 100

// Player is the player entity. The combat engine reads position, facing and
// health, and writes health only.
type Player struct {
	UserID string
	X, Y   float64
	Facing geom.Facing
	HP     int
}

func NewPlayer(userID string, x, y float64) *Player {
	return &Player{UserID: userID, X: x, Y: y, Facing: geom.FacingDown, HP: PlayerMaxHP}
}

// SetHP writes health, clamped into [0, PlayerMaxHP].
func (p *Player) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > PlayerMaxHP {
		hp = PlayerMaxHP
	}
	p.HP = hp
}

// ApplyDamage reduces health by n, clamped at zero.
func (p *Player) ApplyDamage(n int) {
	p.SetHP(p.HP - n)
}

// Restore refills health to the maximum.
func (p *Player) Restore() {
	p.HP = PlayerMaxHP
}

// Defeated reports whether the player's health has reached zero.
func (p *Player) Defeated() bool {
	return p.HP <= 0
}

// Enemy is a hostile entity bound to one subject. Defeating it requires
// answering questions from that subject.
type Enemy struct {
	Name       string
	SubjectKey string
	X, Y       float64
	Level      int
	HP         int
	MaxHP      int
}

// EnemyMaxHP scales enemy health with level.
func EnemyMaxHP(level int) int {
	return 30 + 10*(level-1)
}

func NewEnemy(name, subjectKey string, x, y float64, level int) *Enemy {
	hp := EnemyMaxHP(level)
	return &Enemy{Name: name, SubjectKey: subjectKey, X: x, Y: y, Level: level, HP: hp, MaxHP: hp}
}

// Position returns the top-left corner of the enemy's cell.
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// Alive reports whether the enemy can still be engaged.
func (e *Enemy) Alive() bool { return e.HP > 0 }

// ApplyDamage reduces health by n, clamped at zero.
func (e *Enemy) ApplyDamage(n int) {
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
}

// Room is a walkable rectangle with a fixed set of enemies. Coordinates are
// grid cells; the cell size for targeting math is 1.
type Room struct {
	Width, Height int
	Enemies       []*Enemy
}

// CellSize is the targeting cell size for grid-based rooms.
const CellSize = 1.0

// CanEnter reports whether the player may step onto a cell: inside the walls
// and not occupied by a live enemy.
func (r *Room) CanEnter(x, y float64) bool {
	if x < 0 || y < 0 || x >= float64(r.Width) || y >= float64(r.Height) {
		return false
	}
	for _, e := range r.Enemies {
		if e.Alive() && e.X == x && e.Y == y {
			return false
		}
	}
	return true
}

// MovePlayer turns the player toward dir and advances one cell when the
// destination is free. Facing updates even when the step is blocked.
func (r *Room) MovePlayer(p *Player, dir geom.Facing) {
	p.Facing = dir
	x, y := p.X, p.Y
	switch dir {
	case geom.FacingRight:
		x++
	case geom.FacingLeft:
		x--
	case geom.FacingDown:
		y++
	case geom.FacingUp:
		y--
	}
	if r.CanEnter(x, y) {
		p.X, p.Y = x, y
	}
}

// LiveEnemies returns the enemies still standing.
func (r *Room) LiveEnemies() []*Enemy {
	var live []*Enemy
	for _, e := range r.Enemies {
		if e.Alive() {
			live = append(live, e)
		}
	}
	return live
}
