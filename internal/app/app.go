package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/combat"
	"quizdungeon/internal/rating"
	"quizdungeon/internal/router"
	"quizdungeon/internal/screen"
	"quizdungeon/internal/screens/home"
	"quizdungeon/internal/store"
	"quizdungeon/internal/ui/layout"
	"quizdungeon/internal/xp"
)

// Options configures a program run.
type Options struct {
	Store  *store.Store
	UserID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
	status screen.StatusMsg
}

// outcomeLog adapts the answer log repository to the combat session's writer.
type outcomeLog struct {
	repo *store.AnswerRepo
}

func (l outcomeLog) AppendOutcome(ctx context.Context, rec combat.OutcomeRecord) error {
	return l.repo.Append(ctx, &store.AnswerRow{
		UserID:        rec.UserID,
		QuestionID:    rec.QuestionID,
		SelectedIndex: rec.SelectedIndex,
		Correct:       rec.Correct,
		TimedOut:      rec.TimedOut,
		ElapsedMs:     rec.ElapsedMs,
		EncounterID:   rec.EncounterID,
	})
}

// newAppModel wires the repositories into the home screen's dependencies.
func newAppModel(opts Options) (AppModel, error) {
	ledger := xp.NewService(opts.Store.Experience())

	info, err := ledger.Info(context.Background(), opts.UserID)
	if err != nil {
		return AppModel{}, fmt.Errorf("load player level: %w", err)
	}

	homeScreen := home.New(home.Deps{
		UserID:  opts.UserID,
		Catalog: opts.Store.Questions(),
		Ratings: rating.NewTracker(opts.Store.Answers()),
		Log:     outcomeLog{repo: opts.Store.Answers()},
		Ledger:  ledger,
		Answers: opts.Store.Answers(),
		Level:   info.Level,
	})

	return AppModel{
		router: router.New(homeScreen),
		status: screen.StatusMsg{Level: info.Level},
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatusMsg:
		// Cache for the header, then let the screens see it too.
		m.status = msg

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status.HP, m.status.MaxHP, m.status.Level, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hinter.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
