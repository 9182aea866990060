// Package rating derives a per-subject skill estimate from answer history.
//
// The rating is never stored: it is recomputed by folding the ordered outcome
// history through an asymptotic update rule. Replaying the same history always
// yields the same value, including the per-step rounding artifacts.
package rating

import (
	"math"
	"time"
)

const (
	// Min and Max bound the rating range.
	Min = 1.0
	Max = 10.0

	// Default is the rating for a user with no history.
	Default = 5.0
)

// Outcome is one historical answer result, ordered by AnsweredAt.
type Outcome struct {
	QuestionID int64
	Correct    bool
	TimedOut   bool
	AnsweredAt time.Time
}

// Step applies one outcome to a rating. Correct answers climb a third of the
// remaining distance to 10, wrong answers (timeouts included) drop a quarter
// of the distance to 1. Each step is rounded to one decimal, ceiling on the
// way up and floor on the way down; the rounding is part of the rule, not an
// afterthought, so intermediate values must not be kept at full precision.
func Step(current float64, correct bool) float64 {
	if correct {
		return math.Ceil((current+(Max-current)/3)*10) / 10
	}
	return math.Floor((current-(current-Min)/4)*10) / 10
}

// Fold replays an ordered history (oldest first) from the default rating.
// An empty history yields the default.
func Fold(history []Outcome) float64 {
	r := Default
	for _, o := range history {
		r = Step(r, o.Correct && !o.TimedOut)
	}
	return r
}

// Rounded converts a folded rating to the integer form consumers scale
// damage and time budgets with.
func Rounded(r float64) int {
	return int(math.Round(r))
}
