// Package catalog defines quiz questions and the pool selection rule used
// during encounters.
package catalog

import "context"

// Question is one multiple-choice question. DerivedLevel is not intrinsic to
// the question: it is computed for the requesting user by inverting their
// rating, so the same question can be level 3 for one player and level 8 for
// another.
type Question struct {
	ID           int64
	SubjectKey   string
	SubjectName  string
	Text         string
	Answers      [4]string
	CorrectIndex int
	DerivedLevel int
}

// Source supplies a subject's full catalog annotated with per-user derived
// levels.
type Source interface {
	QuestionsForSubject(ctx context.Context, subjectKey, userID string) ([]Question, error)
}

// Subject is a playable question category.
type Subject struct {
	Key  string
	Name string
}

// Select picks the question whose derived level is closest to the enemy's
// level, excluding IDs already used in this encounter. Ties resolve to the
// lowest question ID, so repeated calls over the same pool are reproducible.
// ok is false when no eligible question remains.
func Select(pool []Question, enemyLevel int, used map[int64]bool) (q Question, ok bool) {
	bestDist := -1
	for _, cand := range pool {
		if used[cand.ID] {
			continue
		}
		dist := cand.DerivedLevel - enemyLevel
		if dist < 0 {
			dist = -dist
		}
		switch {
		case bestDist < 0, dist < bestDist:
			q, bestDist, ok = cand, dist, true
		case dist == bestDist && cand.ID < q.ID:
			q = cand
		}
	}
	return q, ok
}
