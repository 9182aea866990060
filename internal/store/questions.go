package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"quizdungeon/internal/catalog"
	"quizdungeon/internal/difficulty"
	"quizdungeon/internal/rating"
)

// QuestionRepo reads the question catalog and annotates it with per-question
// difficulty derived from the caller's answer history.
type QuestionRepo struct {
	db *bun.DB
}

var _ catalog.Source = (*QuestionRepo)(nil)

// QuestionsForSubject returns the subject's questions with DerivedLevel
// computed from the user's history on each question: a question the user
// keeps getting right rates high and derives a low level, so the selector
// stops favoring it for strong enemies.
func (r *QuestionRepo) QuestionsForSubject(ctx context.Context, subjectKey, userID string) ([]catalog.Question, error) {
	var rows []QuestionRow
	err := r.db.NewSelect().
		Model(&rows).
		Where("subject_key = ?", subjectKey).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	folds, err := r.questionRatings(ctx, subjectKey, userID)
	if err != nil {
		return nil, err
	}

	qs := make([]catalog.Question, 0, len(rows))
	for _, row := range rows {
		level := difficulty.QuestionLevel(rating.Rounded(rating.Default))
		if f, ok := folds[row.ID]; ok {
			level = difficulty.QuestionLevel(rating.Rounded(f))
		}
		qs = append(qs, catalog.Question{
			ID:           row.ID,
			SubjectKey:   row.SubjectKey,
			SubjectName:  row.SubjectName,
			Text:         row.Question,
			Answers:      [4]string{row.Answer0, row.Answer1, row.Answer2, row.Answer3},
			CorrectIndex: row.CorrectIndex,
			DerivedLevel: level,
		})
	}
	return qs, nil
}

// questionRatings folds each question's own answer history into a rating,
// keyed by question ID. Unanswered questions are absent.
func (r *QuestionRepo) questionRatings(ctx context.Context, subjectKey, userID string) (map[int64]float64, error) {
	var events []AnswerRow
	err := r.db.NewSelect().
		Model(&events).
		Join("JOIN questions AS q ON q.id = a.question_id").
		Where("a.user_id = ?", userID).
		Where("q.subject_key = ?", subjectKey).
		OrderExpr("a.question_id ASC, a.answered_at ASC, a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answer history: %w", err)
	}

	folds := make(map[int64]float64)
	for _, e := range events {
		f, ok := folds[e.QuestionID]
		if !ok {
			f = rating.Default
		}
		folds[e.QuestionID] = rating.Step(f, e.Correct && !e.TimedOut)
	}
	return folds, nil
}

// Subjects returns the distinct subjects in the catalog, ordered by key.
func (r *QuestionRepo) Subjects(ctx context.Context) ([]catalog.Subject, error) {
	var rows []QuestionRow
	err := r.db.NewSelect().
		Model(&rows).
		ColumnExpr("DISTINCT subject_key, subject_name").
		OrderExpr("subject_key ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	subjects := make([]catalog.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, catalog.Subject{Key: row.SubjectKey, Name: row.SubjectName})
	}
	return subjects, nil
}
