package store

import (
	"context"
	"testing"

	"quizdungeon/internal/rating"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	count, err := s.DB().NewSelect().Model((*QuestionRow)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if count != 30 {
		t.Errorf("seeded questions = %d, want 30", count)
	}

	subjects, err := s.Questions().Subjects(ctx)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("subjects = %d, want 3", len(subjects))
	}
	// Ordered by key: chemie, mathe, physik.
	if subjects[0].Key != "chemie" || subjects[1].Key != "mathe" || subjects[2].Key != "physik" {
		t.Errorf("subject order = %v", subjects)
	}
	if subjects[1].Name != "Mathematik" {
		t.Errorf("mathe display name = %q, want Mathematik", subjects[1].Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := seedQuestions(ctx, s.db); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	count, err := s.DB().NewSelect().Model((*QuestionRow)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if count != 30 {
		t.Errorf("questions after re-seed = %d, want 30", count)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"questions", "answer_log", "xp_log"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestQuestionsForSubject_DefaultLevels(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	qs, err := s.Questions().QuestionsForSubject(ctx, "mathe", "local")
	if err != nil {
		t.Fatalf("questions for subject: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("mathe questions = %d, want 10", len(qs))
	}
	for _, q := range qs {
		if q.DerivedLevel != 6 {
			t.Errorf("question %d level = %d, want 6 with no history", q.ID, q.DerivedLevel)
		}
		if q.SubjectKey != "mathe" {
			t.Errorf("question %d subject = %q", q.ID, q.SubjectKey)
		}
	}
}

func TestQuestionsForSubject_LevelsFollowHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	qs, err := s.Questions().QuestionsForSubject(ctx, "mathe", "local")
	if err != nil {
		t.Fatalf("questions for subject: %v", err)
	}
	target := qs[0].ID

	// Three straight correct answers: 5.0 -> 6.7 -> 7.8 -> 8.6, rounded 9.
	for i := 0; i < 3; i++ {
		err := s.Answers().Append(ctx, &AnswerRow{
			UserID:     "local",
			QuestionID: target,
			Correct:    true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	qs, err = s.Questions().QuestionsForSubject(ctx, "mathe", "local")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, q := range qs {
		want := 6
		if q.ID == target {
			want = 2 // 11 - 9
		}
		if q.DerivedLevel != want {
			t.Errorf("question %d level = %d, want %d", q.ID, q.DerivedLevel, want)
		}
	}
}

func TestAnswerHistory_ScopedAndOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mathe, err := s.Questions().QuestionsForSubject(ctx, "mathe", "local")
	if err != nil {
		t.Fatalf("mathe questions: %v", err)
	}

	rows := []*AnswerRow{
		{UserID: "local", QuestionID: mathe[0].ID, SelectedIndex: 0, Correct: true},
		{UserID: "local", QuestionID: mathe[1].ID, SelectedIndex: -1, TimedOut: true},
		{UserID: "other", QuestionID: mathe[0].ID, SelectedIndex: 0, Correct: true},
	}
	for i, row := range rows {
		if err := s.Answers().Append(ctx, row); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := s.Answers().History(ctx, "local", "mathe")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (other users excluded)", len(history))
	}
	if !history[0].Correct || history[0].TimedOut {
		t.Errorf("first outcome = %+v, want correct", history[0])
	}
	if !history[1].TimedOut {
		t.Errorf("second outcome = %+v, want timed out", history[1])
	}

	// The fold sees correct then wrong: 5.0 -> 6.7 -> 5.2.
	if got := rating.Fold(history); got != 5.2 {
		t.Errorf("fold = %v, want 5.2", got)
	}

	other, err := s.Answers().History(ctx, "local", "physik")
	if err != nil {
		t.Fatalf("physik history: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("physik history = %d entries, want none", len(other))
	}
}

func TestExperienceLedger(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	total, err := s.Experience().Total(ctx, "local")
	if err != nil {
		t.Fatalf("total (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("empty total = %d, want 0", total)
	}

	grants := []*ExperienceRow{
		{UserID: "local", Amount: 50, Reason: "enemy_defeated", EnemyLevel: 1},
		{UserID: "local", Amount: 90, Reason: "enemy_defeated", EnemyLevel: 5},
		{UserID: "other", Amount: 999, Reason: "enemy_defeated", EnemyLevel: 9},
	}
	for i, g := range grants {
		if err := s.Experience().Append(ctx, g); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	total, err = s.Experience().Total(ctx, "local")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 140 {
		t.Errorf("total = %d, want 140", total)
	}

	recent, err := s.Experience().Grants(ctx, "local", 1)
	if err != nil {
		t.Fatalf("grants: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("grants length = %d, want 1", len(recent))
	}
}

func TestStats_FoldsPerQuestion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mathe, err := s.Questions().QuestionsForSubject(ctx, "mathe", "local")
	if err != nil {
		t.Fatalf("mathe questions: %v", err)
	}

	rows := []*AnswerRow{
		{UserID: "local", QuestionID: mathe[0].ID, Correct: true},
		{UserID: "local", QuestionID: mathe[0].ID, Correct: true},
		{UserID: "local", QuestionID: mathe[1].ID, SelectedIndex: -1, TimedOut: true},
	}
	for i, row := range rows {
		if err := s.Answers().Append(ctx, row); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := s.Answers().Stats(ctx, "local")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("subjects with stats = %d, want 1", len(stats))
	}

	subject := stats[0]
	if subject.SubjectKey != "mathe" || len(subject.Questions) != 2 {
		t.Fatalf("subject = %+v, want mathe with 2 questions", subject)
	}

	first, second := subject.Questions[0], subject.Questions[1]
	if first.Correct != 2 || first.Wrong != 0 || first.Timeout != 0 {
		t.Errorf("first tallies = %+v", first)
	}
	if first.Rating != 8 { // 5.0 -> 6.7 -> 7.8
		t.Errorf("first rating = %d, want 8", first.Rating)
	}
	if second.Timeout != 1 {
		t.Errorf("second tallies = %+v", second)
	}
	if second.Rating != 4 { // 5.0 -> 4.0
		t.Errorf("second rating = %d, want 4", second.Rating)
	}
	if subject.AverageRating != 6 { // round((8+4)/2)
		t.Errorf("average = %d, want 6", subject.AverageRating)
	}
}
