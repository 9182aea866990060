package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/catalog"
	"quizdungeon/internal/combat"
	"quizdungeon/internal/router"
	"quizdungeon/internal/screen"
	"quizdungeon/internal/screens/roam"
	"quizdungeon/internal/screens/stats"
	"quizdungeon/internal/ui/components"
	"quizdungeon/internal/ui/theme"
	"quizdungeon/internal/xp"
)

const banner = `
  ██████  ██    ██ ██ ███████
 ██    ██ ██    ██ ██    ███
 ██    ██ ██    ██ ██   ███
 ██ ▄▄ ██ ██    ██ ██  ███
  ██████   ██████  ██ ███████
     ▀▀   D U N G E O N`

// Deps carries everything the dungeon screens need; home hands them down.
type Deps struct {
	UserID  string
	Catalog catalog.Source
	Ratings combat.RatingSource
	Log     combat.OutcomeWriter
	Ledger  *xp.Service
	Answers stats.StatsSource
	Level   int
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	menuLabels := []string{"ENTER DUNGEON", "STATISTICS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roam.New(roam.Params{
					UserID:  deps.UserID,
					Catalog: deps.Catalog,
					Ratings: deps.Ratings,
					Log:     deps.Log,
					Ledger:  deps.Ledger,
					Level:   deps.Level,
				})}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Answers, deps.Ledger, deps.UserID)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s, ok := msg.(screen.StatusMsg); ok {
		// Keep the level current so the next dungeon run scales properly.
		h.deps.Level = s.Level
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render(banner)
	subtitle := theme.Subtitle.Width(width).Render("Beantworte Fragen. Besiege Monster.")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	content := strings.Join([]string{title, "", subtitle, "", "", menu}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
