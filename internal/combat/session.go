// Package combat runs quiz-driven encounters: one bound enemy, a loop of
// rating-scaled questions under a countdown, and health/experience updates.
//
// The engine assumes a cooperative single-threaded driver (the Bubble Tea
// update loop): timer expiry, answer submission, and async lookups are
// serialized by the caller. At-most-once resolution per round is enforced
// with a generation token: every round gets a fresh token, and resolving
// bumps it synchronously before any awaited work, so a late timer or a
// double submit sees a stale token and becomes a no-op.
package combat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quizdungeon/internal/catalog"
	"quizdungeon/internal/difficulty"
	"quizdungeon/internal/progression"
	"quizdungeon/internal/rating"
	"quizdungeon/internal/world"
)

// TimeoutIndex is the sentinel answer index submitted when the round timer
// expires. It never matches a correct index.
const TimeoutIndex = -1

// State is the encounter lifecycle position.
type State int

const (
	StateIdle State = iota
	StateEngaging
	StateAwaitingAnswer
	StateResolving
	StateEnding
	StateEnded
)

var (
	// ErrNoTarget is returned when engaging nothing or a dead enemy.
	ErrNoTarget = errors.New("combat: no live target to engage")

	// ErrNoEligibleQuestion signals an exhausted pool; the encounter ends
	// instead of stalling.
	ErrNoEligibleQuestion = errors.New("combat: no eligible question left")

	// ErrStaleRound marks a resolution attempt for a round that was already
	// resolved or cancelled. Callers treat it as a no-op.
	ErrStaleRound = errors.New("combat: stale round token")

	// ErrInvalidAnswer rejects an out-of-range answer index without touching
	// session state.
	ErrInvalidAnswer = errors.New("combat: answer index out of range")

	// ErrBadState is returned when an operation does not fit the current
	// lifecycle state.
	ErrBadState = errors.New("combat: operation not valid in current state")
)

// OutcomeRecord is one answer result appended to the durable answer log.
type OutcomeRecord struct {
	UserID        string
	QuestionID    int64
	SelectedIndex int
	Correct       bool
	ElapsedMs     int
	TimedOut      bool
	EncounterID   string
}

// OutcomeWriter appends answer outcomes. Failures are tolerated: a round
// never stalls on a logging error.
type OutcomeWriter interface {
	AppendOutcome(ctx context.Context, rec OutcomeRecord) error
}

// RatingSource resolves the current rounded rating for a (user, subject)
// pair. rating.Tracker satisfies this.
type RatingSource interface {
	Rating(ctx context.Context, userID, subjectKey string) (int, error)
}

// ExperienceLedger grants experience on victory. Best-effort: a grant failure
// never prevents the session from ending.
type ExperienceLedger interface {
	GrantExperience(ctx context.Context, userID string, amount int, reason string, enemyLevel int) error
}

// Params wires a session's collaborators.
type Params struct {
	Player  *world.Player
	Enemy   *world.Enemy
	Catalog catalog.Source
	Ratings RatingSource
	Log     OutcomeWriter
	Ledger  ExperienceLedger
	Config  Config
}

// Round is one question presented under a countdown. Token identifies the
// round for resolution; whichever of timer expiry or answer submission
// presents the token first wins.
type Round struct {
	Token         int
	Question      catalog.Question
	TimeLimitSecs int
	StartedAt     time.Time
}

// Resolution is the outcome of one resolved round.
type Resolution struct {
	Correct        bool
	TimedOut       bool
	DamageDealt    int
	DamageTaken    int
	Feedback       string
	EnemyHP        int
	PlayerHP       int
	EnemyDefeated  bool
	PlayerDefeated bool
	Continue       bool // another round follows after the feedback delay
}

// Report is the terminal result of an encounter.
type Report struct {
	Victory       bool
	Defeat        bool
	RewardXP      int
	RewardGranted bool
}

// Session is one active encounter. Not safe for concurrent use; drive it from
// a single goroutine.
type Session struct {
	ID    string
	cfg   Config
	state State
	token int

	player *world.Player
	enemy  *world.Enemy

	rating    int // held rating for the enemy's subject
	used      map[int64]bool
	question  *catalog.Question
	budget    difficulty.Budget
	startedAt time.Time

	catalog catalog.Source
	ratings RatingSource
	log     OutcomeWriter
	ledger  ExperienceLedger
}

// Engage binds a live enemy to a new session. The rating and catalog reads
// are prerequisites: if either fails the engagement aborts with no session,
// no timer, and nothing to tear down.
func Engage(ctx context.Context, p Params) (*Session, error) {
	if p.Enemy == nil || !p.Enemy.Alive() {
		return nil, ErrNoTarget
	}
	if p.Config.Damage == nil {
		p.Config = p.Config.withDefaults()
	}

	r, err := p.Ratings.Rating(ctx, p.Player.UserID, p.Enemy.SubjectKey)
	if err != nil {
		return nil, fmt.Errorf("load rating: %w", err)
	}

	// Probe the catalog up front so an unavailable service aborts the
	// engagement instead of surfacing mid-encounter.
	pool, err := p.Catalog.QuestionsForSubject(ctx, p.Enemy.SubjectKey, p.Player.UserID)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoEligibleQuestion
	}

	return &Session{
		ID:      uuid.New().String(),
		cfg:     p.Config,
		state:   StateEngaging,
		player:  p.Player,
		enemy:   p.Enemy,
		rating:  r,
		used:    make(map[int64]bool),
		catalog: p.Catalog,
		ratings: p.Ratings,
		log:     p.Log,
		ledger:  p.Ledger,
	}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Enemy returns the bound target.
func (s *Session) Enemy() *world.Enemy { return s.enemy }

// Rating returns the rating the session currently scales with.
func (s *Session) Rating() int { return s.rating }

// NextQuestion selects the next question and opens a new round. The pool is
// re-fetched and the budget recomputed every round because the rating moves
// between rounds. Returns ErrNoEligibleQuestion (state Ending) when the pool
// is exhausted, or ErrBadState outside Engaging.
func (s *Session) NextQuestion(ctx context.Context) (*Round, error) {
	if s.state != StateEngaging {
		return nil, ErrBadState
	}
	if !s.enemy.Alive() || s.player.Defeated() {
		s.state = StateEnding
		return nil, ErrBadState
	}

	pool, err := s.catalog.QuestionsForSubject(ctx, s.enemy.SubjectKey, s.player.UserID)
	if err != nil {
		s.state = StateEnding
		return nil, fmt.Errorf("load question pool: %w", err)
	}

	q, ok := catalog.Select(pool, s.enemy.Level, s.used)
	if !ok {
		s.state = StateEnding
		return nil, ErrNoEligibleQuestion
	}

	s.used[q.ID] = true
	s.question = &q
	s.budget = difficulty.ForRound(s.rating, s.enemy.Level)
	s.startedAt = time.Now()
	s.token++
	s.state = StateAwaitingAnswer

	return &Round{
		Token:         s.token,
		Question:      q,
		TimeLimitSecs: s.budget.TimeLimitSecs,
		StartedAt:     s.startedAt,
	}, nil
}

// Resolve settles the round identified by token with an answer index
// (0-3, or TimeoutIndex when the timer expired). The token is invalidated
// synchronously before any awaited work, so the losing side of a
// timer-vs-answer race gets ErrStaleRound and must treat it as a no-op.
func (s *Session) Resolve(ctx context.Context, token, selectedIndex int) (*Resolution, error) {
	if selectedIndex != TimeoutIndex && (selectedIndex < 0 || selectedIndex > 3) {
		return nil, ErrInvalidAnswer
	}
	if s.state != StateAwaitingAnswer || token != s.token {
		return nil, ErrStaleRound
	}

	// Cancel the round before anything that can suspend.
	s.token++
	s.state = StateResolving

	q := *s.question
	s.question = nil
	elapsed := int(time.Since(s.startedAt).Milliseconds())
	timedOut := selectedIndex == TimeoutIndex
	correct := !timedOut && selectedIndex == q.CorrectIndex

	// Record the outcome and refresh the rating. Both are best-effort: on
	// any failure the round proceeds with the rating held before it.
	err := s.log.AppendOutcome(ctx, OutcomeRecord{
		UserID:        s.player.UserID,
		QuestionID:    q.ID,
		SelectedIndex: selectedIndex,
		Correct:       correct,
		ElapsedMs:     elapsed,
		TimedOut:      timedOut,
		EncounterID:   s.ID,
	})
	if err == nil {
		if r, rerr := s.ratings.Rating(ctx, s.player.UserID, s.enemy.SubjectKey); rerr == nil {
			s.rating = r
		}
	}

	res := &Resolution{Correct: correct, TimedOut: timedOut}
	if correct {
		res.DamageDealt = s.cfg.Damage.DamageDealt(s.rating, s.enemy.Level)
		s.enemy.ApplyDamage(res.DamageDealt)
		res.Feedback = fmt.Sprintf("✓ Richtig! %d Schaden!", res.DamageDealt)
	} else {
		res.DamageTaken = s.cfg.Damage.DamageTaken(s.rating, s.enemy.Level)
		s.player.ApplyDamage(res.DamageTaken)
		answer := q.Answers[q.CorrectIndex]
		if timedOut {
			res.Feedback = fmt.Sprintf("✗ Zeit abgelaufen! Richtige Antwort: %s (-%d HP)", answer, res.DamageTaken)
		} else {
			res.Feedback = fmt.Sprintf("✗ Falsch! Richtige Antwort: %s (-%d HP)", answer, res.DamageTaken)
		}
	}

	// Health is re-checked immediately after every mutation; it decides the
	// next transition.
	res.EnemyHP = s.enemy.HP
	res.PlayerHP = s.player.HP
	res.EnemyDefeated = !s.enemy.Alive()
	res.PlayerDefeated = s.player.Defeated()

	if res.EnemyDefeated || res.PlayerDefeated {
		s.state = StateEnding
	} else {
		s.state = StateEngaging
		res.Continue = true
	}
	return res, nil
}

// Conclude finishes an ending session: grants the experience reward on
// victory (best-effort) and tears the session down. The defeat signal is
// carried in the report instead of a reward.
func (s *Session) Conclude(ctx context.Context) (*Report, error) {
	if s.state != StateEnding {
		return nil, ErrBadState
	}

	report := &Report{}
	if !s.enemy.Alive() {
		report.Victory = true
		report.RewardXP = progression.ExperienceReward(s.enemy.Level)
		err := s.ledger.GrantExperience(ctx, s.player.UserID, report.RewardXP,
			"enemy_defeated", s.enemy.Level)
		report.RewardGranted = err == nil
	} else if s.player.Defeated() {
		report.Defeat = true
	}

	s.teardown()
	return report, nil
}

// Abort ends the session from any state, cancelling whatever round is open.
// Safe to call repeatedly.
func (s *Session) Abort() {
	if s.state == StateEnded {
		return
	}
	s.teardown()
}

// teardown unconditionally releases session state. Bumping the token
// invalidates any timer still in flight.
func (s *Session) teardown() {
	s.token++
	s.question = nil
	s.used = nil
	s.state = StateEnded
}

var _ RatingSource = (*rating.Tracker)(nil)
