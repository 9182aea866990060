package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/uptrace/bun"

	"quizdungeon/internal/rating"
)

// AnswerRepo appends to and reads the append-only answer log. Rows are never
// updated or deleted; every rating is recomputed from the full history.
type AnswerRepo struct {
	db *bun.DB
}

var _ rating.HistoryReader = (*AnswerRepo)(nil)

// Append records one answer outcome.
func (r *AnswerRepo) Append(ctx context.Context, row *AnswerRow) error {
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	return nil
}

// History returns the user's outcomes for one subject in answer order, oldest
// first. The order matters: ratings fold over it step by step.
func (r *AnswerRepo) History(ctx context.Context, userID, subjectKey string) ([]rating.Outcome, error) {
	var events []AnswerRow
	err := r.db.NewSelect().
		Model(&events).
		Join("JOIN questions AS q ON q.id = a.question_id").
		Where("a.user_id = ?", userID).
		Where("q.subject_key = ?", subjectKey).
		OrderExpr("a.answered_at ASC, a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answer history: %w", err)
	}

	outcomes := make([]rating.Outcome, 0, len(events))
	for _, e := range events {
		outcomes = append(outcomes, rating.Outcome{
			QuestionID: e.QuestionID,
			Correct:    e.Correct,
			TimedOut:   e.TimedOut,
			AnsweredAt: e.AnsweredAt,
		})
	}
	return outcomes, nil
}

// QuestionStats aggregates one question's answer history.
type QuestionStats struct {
	QuestionID int64
	Question   string
	Correct    int
	Wrong      int
	Timeout    int
	Rating     int
}

// SubjectStats aggregates a subject's answered questions.
type SubjectStats struct {
	SubjectKey    string
	SubjectName   string
	Questions     []QuestionStats
	AverageRating int
}

// Stats folds the user's full answer log into per-question tallies and
// ratings, grouped by subject. Only answered questions appear; a subject's
// average is the mean of its rounded per-question ratings.
func (r *AnswerRepo) Stats(ctx context.Context, userID string) ([]SubjectStats, error) {
	var events []AnswerRow
	err := r.db.NewSelect().
		Model(&events).
		Where("user_id = ?", userID).
		OrderExpr("question_id ASC, answered_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answer history: %w", err)
	}

	questions := make(map[int64]QuestionRow)
	{
		var rows []QuestionRow
		if err := r.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
			return nil, fmt.Errorf("load questions: %w", err)
		}
		for _, row := range rows {
			questions[row.ID] = row
		}
	}

	type acc struct {
		stats QuestionStats
		fold  float64
	}
	byQuestion := make(map[int64]*acc)
	var order []int64
	for _, e := range events {
		a, ok := byQuestion[e.QuestionID]
		if !ok {
			a = &acc{
				stats: QuestionStats{QuestionID: e.QuestionID, Question: questions[e.QuestionID].Question},
				fold:  rating.Default,
			}
			byQuestion[e.QuestionID] = a
			order = append(order, e.QuestionID)
		}
		switch {
		case e.TimedOut:
			a.stats.Timeout++
		case e.Correct:
			a.stats.Correct++
		default:
			a.stats.Wrong++
		}
		a.fold = rating.Step(a.fold, e.Correct && !e.TimedOut)
	}

	grouped := make(map[string]*SubjectStats)
	var keys []string
	for _, id := range order {
		a := byQuestion[id]
		a.stats.Rating = rating.Rounded(a.fold)

		q := questions[id]
		g, ok := grouped[q.SubjectKey]
		if !ok {
			g = &SubjectStats{SubjectKey: q.SubjectKey, SubjectName: q.SubjectName}
			grouped[q.SubjectKey] = g
			keys = append(keys, q.SubjectKey)
		}
		g.Questions = append(g.Questions, a.stats)
	}
	sort.Strings(keys)

	out := make([]SubjectStats, 0, len(keys))
	for _, key := range keys {
		g := grouped[key]
		total := 0
		for _, qs := range g.Questions {
			total += qs.Rating
		}
		if n := len(g.Questions); n > 0 {
			g.AverageRating = (total + n/2) / n
		}
		out = append(out, *g)
	}
	return out, nil
}
