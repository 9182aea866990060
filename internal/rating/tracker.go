package rating

import "context"

// HistoryReader supplies the ordered answer history for one (user, subject)
// pair, oldest first.
type HistoryReader interface {
	History(ctx context.Context, userID, subjectKey string) ([]Outcome, error)
}

// Tracker resolves current ratings by replaying history on demand.
type Tracker struct {
	log HistoryReader
}

func NewTracker(log HistoryReader) *Tracker {
	return &Tracker{log: log}
}

// Rating returns the rounded current rating for a subject. A user with no
// history gets the default.
func (t *Tracker) Rating(ctx context.Context, userID, subjectKey string) (int, error) {
	r, err := t.Exact(ctx, userID, subjectKey)
	if err != nil {
		return 0, err
	}
	return Rounded(r), nil
}

// Exact returns the folded rating before integer rounding, for display.
func (t *Tracker) Exact(ctx context.Context, userID, subjectKey string) (float64, error) {
	history, err := t.log.History(ctx, userID, subjectKey)
	if err != nil {
		return 0, err
	}
	return Fold(history), nil
}
