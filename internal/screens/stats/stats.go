// Package stats renders the player's answer history: per-question tallies
// and ratings grouped by subject, plus the level progress bar.
package stats

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/progression"
	"quizdungeon/internal/screen"
	"quizdungeon/internal/store"
	"quizdungeon/internal/ui/components"
	"quizdungeon/internal/ui/layout"
	"quizdungeon/internal/ui/theme"
	"quizdungeon/internal/xp"
)

// StatsSource provides the folded answer statistics.
type StatsSource interface {
	Stats(ctx context.Context, userID string) ([]store.SubjectStats, error)
}

// StatsScreen shows the player's learning record.
type StatsScreen struct {
	source StatsSource
	ledger *xp.Service
	userID string

	loading  bool
	subjects []store.SubjectStats
	info     progression.LevelInfo
	errMsg   string

	spinner spinner.Model
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

type loadedMsg struct {
	Subjects []store.SubjectStats
	Info     progression.LevelInfo
	Err      error
}

// New creates a stats screen for one user.
func New(source StatsSource, ledger *xp.Service, userID string) *StatsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &StatsScreen{
		source:  source,
		ledger:  ledger,
		userID:  userID,
		loading: true,
		spinner: sp,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadCmd())
}

func (s *StatsScreen) loadCmd() tea.Cmd {
	source, ledger, userID := s.source, s.ledger, s.userID
	return func() tea.Msg {
		subjects, err := source.Stats(context.Background(), userID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		info, err := ledger.Info(context.Background(), userID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Subjects: subjects, Info: info}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistik"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = "Statistik konnte nicht geladen werden: " + msg.Err.Error()
			return s, nil
		}
		s.subjects = msg.Subjects
		s.info = msg.Info
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.spinner.View() + " Lade Statistik...")
	case s.errMsg != "":
		content = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + theme.Incorrect.Render(s.errMsg))
	default:
		content = s.renderStats(width)
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(content)
}

func (s *StatsScreen) renderStats(width int) string {
	var b strings.Builder

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}

	level := fmt.Sprintf("Level %d  —  %d/%d XP",
		s.info.Level, s.info.XPIntoLevel, s.info.XPNeededForLevel)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(level) + "\n")
	bar := components.NewProgressBar("", s.info.ProgressPercent/100, true, barWidth)
	b.WriteString("  " + bar.View() + "\n\n")

	if len(s.subjects) == 0 {
		b.WriteString("  " + theme.Hint.Render("Noch keine Fragen beantwortet."))
		return b.String()
	}

	for _, subj := range s.subjects {
		header := fmt.Sprintf("%s  (Ø Rating %d)", subj.SubjectName, subj.AverageRating)
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(header) + "\n")
		for _, q := range subj.Questions {
			line := fmt.Sprintf("    %-44s %s %s %s  Rating %d",
				truncate(q.Question, 44),
				theme.Correct.Render(fmt.Sprintf("✓%d", q.Correct)),
				theme.Incorrect.Render(fmt.Sprintf("✗%d", q.Wrong)),
				theme.Hint.Render(fmt.Sprintf("⏱%d", q.Timeout)),
				q.Rating)
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
