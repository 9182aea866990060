// Package difficulty maps a skill rating and an enemy level to a question
// level and an answer time budget.
package difficulty

// RatingUnavailable marks a missing rating; the scaler then assumes the
// middle question level.
const RatingUnavailable = 0

const (
	// DefaultQuestionLevel is used when no rating is available.
	DefaultQuestionLevel = 6

	// MinTimeLimitSecs and MaxTimeLimitSecs clamp the answer budget.
	MinTimeLimitSecs = 3
	MaxTimeLimitSecs = 25

	baseTimeSecs = 13
)

// Budget is the difficulty outcome for one round.
type Budget struct {
	QuestionLevel   int
	LevelDifference int
	TimeLimitSecs   int
}

// QuestionLevel inverts a rating into a question level: a rating of 10 asks
// for the easiest (level 1) questions, a rating of 1 the hardest (level 10).
func QuestionLevel(rating int) int {
	if rating == RatingUnavailable {
		return DefaultQuestionLevel
	}
	return 11 - rating
}

// ForRound computes the question level and time budget for one round. Harder
// relative matchups (enemy level far above the question level) compress the
// budget toward the floor; easy matchups stretch it toward the ceiling.
// Call this once per question: the rating can move between rounds.
func ForRound(ratingValue, enemyLevel int) Budget {
	ql := QuestionLevel(ratingValue)
	diff := enemyLevel - ql

	limit := baseTimeSecs - diff
	if limit < MinTimeLimitSecs {
		limit = MinTimeLimitSecs
	}
	if limit > MaxTimeLimitSecs {
		limit = MaxTimeLimitSecs
	}

	return Budget{
		QuestionLevel:   ql,
		LevelDifference: diff,
		TimeLimitSecs:   limit,
	}
}
