// Package roam is the dungeon room screen: a walkable grid with enemies.
// Bumping space swings at whatever the melee cone covers; a hit opens an
// encounter.
package roam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/catalog"
	"quizdungeon/internal/combat"
	"quizdungeon/internal/geom"
	"quizdungeon/internal/router"
	"quizdungeon/internal/screen"
	"quizdungeon/internal/screens/encounter"
	"quizdungeon/internal/ui/layout"
	"quizdungeon/internal/ui/theme"
	"quizdungeon/internal/world"
	"quizdungeon/internal/xp"
)

const (
	roomWidth  = 12
	roomHeight = 6
)

// Params wires the dungeon run's collaborators.
type Params struct {
	UserID  string
	Catalog catalog.Source
	Ratings combat.RatingSource
	Log     combat.OutcomeWriter
	Ledger  *xp.Service
	Level   int
}

// RoamScreen is the walkable dungeon room.
type RoamScreen struct {
	params Params
	player *world.Player
	room   *world.Room
	depth  int
	notice string
}

var _ screen.Screen = (*RoamScreen)(nil)
var _ screen.KeyHintProvider = (*RoamScreen)(nil)

type spawnSpec struct {
	name       string
	subjectKey string
	x, y       float64
	levelBonus int
}

// Each room draws the same bestiary; depth and player level scale the spawns.
var bestiary = []spawnSpec{
	{"Zahlengeist", "mathe", 4, 1, 0},
	{"Säureschleim", "chemie", 7, 4, 0},
	{"Funkenwicht", "physik", 9, 1, 1},
	{"Formelritter", "physik", 10, 4, 2},
}

// New creates a dungeon run starting at depth 1.
func New(p Params) *RoamScreen {
	r := &RoamScreen{
		params: p,
		player: world.NewPlayer(p.UserID, 1, 2),
		depth:  1,
	}
	r.player.Facing = geom.FacingRight
	r.room = buildRoom(r.depth, p.Level)
	return r
}

// buildRoom spawns the bestiary scaled to depth and player level.
func buildRoom(depth, playerLevel int) *world.Room {
	enemies := make([]*world.Enemy, 0, len(bestiary))
	for _, s := range bestiary {
		level := playerLevel + s.levelBonus + depth - 1
		if level < 1 {
			level = 1
		}
		if level > 10 {
			level = 10
		}
		enemies = append(enemies, world.NewEnemy(s.name, s.subjectKey, s.x, s.y, level))
	}
	return &world.Room{Width: roomWidth, Height: roomHeight, Enemies: enemies}
}

func (r *RoamScreen) Init() tea.Cmd {
	return r.statusCmd()
}

func (r *RoamScreen) statusCmd() tea.Cmd {
	hp, level := r.player.HP, r.params.Level
	return func() tea.Msg {
		return screen.StatusMsg{HP: hp, MaxHP: world.PlayerMaxHP, Level: level}
	}
}

func (r *RoamScreen) Title() string {
	return fmt.Sprintf("Dungeon — Ebene %d", r.depth)
}

func (r *RoamScreen) KeyHints() []layout.KeyHint {
	if r.player.Defeated() {
		return []layout.KeyHint{
			{Key: "R", Description: "Neu versuchen"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if r.cleared() {
		return []layout.KeyHint{
			{Key: "N", Description: "Nächster Raum"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Space", Description: "Attack"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RoamScreen) cleared() bool {
	return len(r.room.LiveEnemies()) == 0
}

func (r *RoamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StatusMsg:
		r.params.Level = msg.Level
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *RoamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if r.player.Defeated() {
		if key == "r" || key == "R" {
			r.player.Restore()
			r.room = buildRoom(r.depth, r.params.Level)
			r.notice = ""
			return r, r.statusCmd()
		}
		return r, nil
	}

	switch key {
	case "up", "k":
		r.room.MovePlayer(r.player, geom.FacingUp)
		r.notice = ""
	case "down", "j":
		r.room.MovePlayer(r.player, geom.FacingDown)
		r.notice = ""
	case "left", "h":
		r.room.MovePlayer(r.player, geom.FacingLeft)
		r.notice = ""
	case "right", "l":
		r.room.MovePlayer(r.player, geom.FacingRight)
		r.notice = ""
	case " ", "space", "a":
		return r.attack()
	case "n", "N":
		if r.cleared() {
			r.depth++
			r.room = buildRoom(r.depth, r.params.Level)
			r.notice = ""
		}
	}
	return r, nil
}

// attack sweeps the melee cone and opens an encounter on the nearest hit.
func (r *RoamScreen) attack() (screen.Screen, tea.Cmd) {
	target := combat.AcquireTarget(r.player, r.room.Enemies)
	if target == nil {
		r.notice = "Nichts in Reichweite."
		return r, nil
	}

	p := r.params
	player := r.player
	return r, func() tea.Msg {
		return router.PushScreenMsg{Screen: encounter.New(encounter.Params{
			Player:  player,
			Enemy:   target,
			Catalog: p.Catalog,
			Ratings: p.Ratings,
			Log:     p.Log,
			Ledger:  p.Ledger,
			Level:   p.Level,
		})}
	}
}

func (r *RoamScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(r.renderGrid(width))
	b.WriteString("\n")
	b.WriteString(r.renderLegend(width))

	if r.player.Defeated() {
		overlay := theme.Incorrect.Render("✗ Besiegt!") + "\n" +
			theme.Hint.Render("R drücken, um es erneut zu versuchen.")
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(overlay))
	} else if r.cleared() {
		overlay := theme.Correct.Render("✓ Raum gesäubert!") + "\n" +
			theme.Hint.Render("N drücken für den nächsten Raum.")
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(overlay))
	} else if r.notice != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(r.notice))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// renderGrid draws the room with walls, the player glyph, and enemy glyphs.
func (r *RoamScreen) renderGrid(width int) string {
	glyphAt := func(x, y float64) (string, bool) {
		if r.player.X == x && r.player.Y == y {
			return theme.PlayerGlyph.Render(facingGlyph(r.player.Facing)), true
		}
		for _, e := range r.room.Enemies {
			if e.X == x && e.Y == y {
				if e.Alive() {
					return theme.EnemyGlyph.Render(string([]rune(e.Name)[0])), true
				}
				return theme.DeadGlyph.Render("×"), true
			}
		}
		return "", false
	}

	var b strings.Builder
	wall := theme.Wall.Render(strings.Repeat("#", (r.room.Width+2)*2))
	b.WriteString(wall + "\n")
	for y := 0; y < r.room.Height; y++ {
		b.WriteString(theme.Wall.Render("# "))
		for x := 0; x < r.room.Width; x++ {
			if g, ok := glyphAt(float64(x), float64(y)); ok {
				b.WriteString(g + " ")
			} else {
				b.WriteString("· ")
			}
		}
		b.WriteString(theme.Wall.Render(" #") + "\n")
	}
	b.WriteString(wall)

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func facingGlyph(f geom.Facing) string {
	switch f {
	case geom.FacingUp:
		return "▲"
	case geom.FacingDown:
		return "▼"
	case geom.FacingLeft:
		return "◀"
	default:
		return "▶"
	}
}

// renderLegend lists each enemy with its level and health.
func (r *RoamScreen) renderLegend(width int) string {
	parts := make([]string, 0, len(r.room.Enemies))
	for _, e := range r.room.Enemies {
		if e.Alive() {
			parts = append(parts, fmt.Sprintf("%s  %s Lv%d %d/%d",
				theme.EnemyGlyph.Render(string([]rune(e.Name)[0])), e.Name, e.Level, e.HP, e.MaxHP))
		} else {
			parts = append(parts, theme.DeadGlyph.Render(fmt.Sprintf("×  %s besiegt", e.Name)))
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "    "))
}
