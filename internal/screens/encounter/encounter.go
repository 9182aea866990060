// Package encounter drives one combat session: question rounds under a
// countdown, answer submission, and the victory or defeat epilogue.
package encounter

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/catalog"
	"quizdungeon/internal/combat"
	"quizdungeon/internal/router"
	"quizdungeon/internal/screen"
	"quizdungeon/internal/ui/components"
	"quizdungeon/internal/ui/layout"
	"quizdungeon/internal/ui/theme"
	"quizdungeon/internal/world"
	"quizdungeon/internal/xp"
)

// Params wires an encounter screen.
type Params struct {
	Player  *world.Player
	Enemy   *world.Enemy
	Catalog catalog.Source
	Ratings combat.RatingSource
	Log     combat.OutcomeWriter
	Ledger  *xp.Service
	Level   int
}

// EncounterScreen implements screen.Screen for an active encounter.
type EncounterScreen struct {
	params Params
	cfg    combat.Config

	session    *combat.Session
	round      *combat.Round
	remaining  int
	answers    components.AnswerList
	order      []int // display position -> stored answer index
	resolution *combat.Resolution
	report     *combat.Report
	errMsg     string

	spinner spinner.Model
}

var _ screen.Screen = (*EncounterScreen)(nil)
var _ screen.KeyHintProvider = (*EncounterScreen)(nil)
var _ screen.Closer = (*EncounterScreen)(nil)

// New creates an encounter screen bound to one enemy.
func New(p Params) *EncounterScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &EncounterScreen{
		params:  p,
		cfg:     combat.DefaultConfig(),
		spinner: sp,
	}
}

func (e *EncounterScreen) Init() tea.Cmd {
	return tea.Batch(e.spinner.Tick, e.engageCmd())
}

func (e *EncounterScreen) Title() string {
	return "Kampf — " + e.params.Enemy.Name
}

func (e *EncounterScreen) KeyHints() []layout.KeyHint {
	switch {
	case e.errMsg != "" || e.report != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case e.round != nil:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Flee"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Flee"}}
}

// Close aborts an unresolved session so stray timers become no-ops.
func (e *EncounterScreen) Close() {
	if e.session != nil {
		e.session.Abort()
	}
}

func (e *EncounterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engagedMsg:
		return e.handleEngaged(msg)

	case roundMsg:
		return e.handleRound(msg)

	case countdownMsg:
		return e.handleCountdown(msg)

	case feedbackDoneMsg:
		return e.handleFeedbackDone()

	case concludedMsg:
		e.report = msg.Report
		return e, e.statusCmd(msg.Level)

	case spinner.TickMsg:
		var cmd tea.Cmd
		e.spinner, cmd = e.spinner.Update(msg)
		return e, cmd

	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

// engageCmd binds the session asynchronously; rating and catalog reads go to
// the database.
func (e *EncounterScreen) engageCmd() tea.Cmd {
	p := e.params
	return func() tea.Msg {
		s, err := combat.Engage(context.Background(), combat.Params{
			Player:  p.Player,
			Enemy:   p.Enemy,
			Catalog: p.Catalog,
			Ratings: p.Ratings,
			Log:     p.Log,
			Ledger:  p.Ledger,
			Config:  combat.DefaultConfig(),
		})
		return engagedMsg{Session: s, Err: err}
	}
}

func (e *EncounterScreen) handleEngaged(msg engagedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		e.errMsg = engageError(msg.Err)
		return e, nil
	}
	e.session = msg.Session
	return e, e.nextRoundCmd()
}

func engageError(err error) string {
	if errors.Is(err, combat.ErrNoEligibleQuestion) {
		return "Keine Fragen für diesen Gegner verfügbar."
	}
	return "Kampf konnte nicht gestartet werden: " + err.Error()
}

func (e *EncounterScreen) nextRoundCmd() tea.Cmd {
	s := e.session
	return func() tea.Msg {
		round, err := s.NextQuestion(context.Background())
		return roundMsg{Round: round, Err: err}
	}
}

func (e *EncounterScreen) handleRound(msg roundMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if e.session.State() == combat.StateEnding {
			// Pool exhausted or combatant down between rounds.
			return e, e.concludeCmd()
		}
		e.errMsg = msg.Err.Error()
		return e, nil
	}

	e.round = msg.Round
	e.resolution = nil
	e.remaining = msg.Round.TimeLimitSecs

	// Shuffle the stored answers into a fresh display order each round.
	e.order = rand.Perm(len(msg.Round.Question.Answers))
	options := make([]string, len(e.order))
	correctDisplay := 0
	for display, stored := range e.order {
		options[display] = msg.Round.Question.Answers[stored]
		if stored == msg.Round.Question.CorrectIndex {
			correctDisplay = display
		}
	}
	e.answers = components.NewAnswerList(options, correctDisplay)

	return e, e.countdownCmd(msg.Round.Token)
}

func (e *EncounterScreen) countdownCmd(token int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownMsg{Token: token, At: t}
	})
}

func (e *EncounterScreen) handleCountdown(msg countdownMsg) (screen.Screen, tea.Cmd) {
	if e.round == nil || msg.Token != e.round.Token {
		// The round this tick belonged to is already settled.
		return e, nil
	}

	e.remaining--
	if e.remaining > 0 {
		return e, e.countdownCmd(msg.Token)
	}
	return e.resolve(combat.TimeoutIndex)
}

func (e *EncounterScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state or epilogue: any key leaves the encounter.
	if e.errMsg != "" || e.report != nil {
		return e, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if e.round == nil {
		return e, nil
	}

	switch key {
	case "1", "2", "3", "4":
		display := int(key[0] - '1')
		if display < len(e.order) {
			return e.resolve(e.order[display])
		}
	case "enter":
		return e.resolve(e.order[e.answers.Selected])
	}

	var cmd tea.Cmd
	e.answers, cmd = e.answers.Update(msg)
	return e, cmd
}

// resolve settles the open round with a stored answer index (or
// combat.TimeoutIndex). A stale token means the other side of the
// timer-vs-answer race got here first; that is a silent no-op.
func (e *EncounterScreen) resolve(stored int) (screen.Screen, tea.Cmd) {
	if e.session == nil || e.round == nil {
		return e, nil
	}

	res, err := e.session.Resolve(context.Background(), e.round.Token, stored)
	if err != nil {
		if errors.Is(err, combat.ErrStaleRound) || errors.Is(err, combat.ErrInvalidAnswer) {
			return e, nil
		}
		e.errMsg = err.Error()
		return e, nil
	}

	chosenDisplay := -1
	if stored != combat.TimeoutIndex {
		for display, s := range e.order {
			if s == stored {
				chosenDisplay = display
				break
			}
		}
	}
	e.answers.Reveal(chosenDisplay)
	e.resolution = res
	e.round = nil

	return e, tea.Batch(
		e.statusCmd(e.params.Level),
		tea.Tick(e.cfg.FeedbackDelay, func(time.Time) tea.Msg { return feedbackDoneMsg{} }),
	)
}

func (e *EncounterScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if e.resolution == nil {
		return e, nil
	}
	if e.resolution.Continue {
		return e, e.nextRoundCmd()
	}
	return e, e.concludeCmd()
}

// concludeCmd settles the session and refreshes the player level, which may
// have moved with a victory reward.
func (e *EncounterScreen) concludeCmd() tea.Cmd {
	s := e.session
	ledger := e.params.Ledger
	userID := e.params.Player.UserID
	level := e.params.Level
	return func() tea.Msg {
		report, err := s.Conclude(context.Background())
		if err != nil {
			report = &combat.Report{}
		}
		if info, err := ledger.Info(context.Background(), userID); err == nil {
			level = info.Level
		}
		return concludedMsg{Report: report, Level: level}
	}
}

func (e *EncounterScreen) statusCmd(level int) tea.Cmd {
	hp := e.params.Player.HP
	return func() tea.Msg {
		return screen.StatusMsg{HP: hp, MaxHP: world.PlayerMaxHP, Level: level}
	}
}
