package store

import (
	"time"

	"github.com/uptrace/bun"
)

// QuestionRow is one catalog entry. Answers are stored in four fixed columns;
// correct_index points at the right one.
type QuestionRow struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID           int64     `bun:"id,pk,autoincrement"`
	SubjectKey   string    `bun:"subject_key,notnull"`
	SubjectName  string    `bun:"subject_name,notnull"`
	Question     string    `bun:"question,notnull"`
	Answer0      string    `bun:"answer_0,notnull"`
	Answer1      string    `bun:"answer_1,notnull"`
	Answer2      string    `bun:"answer_2,notnull"`
	Answer3      string    `bun:"answer_3,notnull"`
	CorrectIndex int       `bun:"correct_index,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// AnswerRow is one append-only answer log entry. selected_index is -1 when
// the round timed out.
type AnswerRow struct {
	bun.BaseModel `bun:"table:answer_log,alias:a"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        string    `bun:"user_id,notnull"`
	QuestionID    int64     `bun:"question_id,notnull"`
	SelectedIndex int       `bun:"selected_index,notnull"`
	Correct       bool      `bun:"is_correct,notnull"`
	TimedOut      bool      `bun:"timeout_occurred,notnull"`
	ElapsedMs     int       `bun:"time_ms,notnull"`
	EncounterID   string    `bun:"encounter_id"`
	AnsweredAt    time.Time `bun:"answered_at,nullzero,notnull,default:current_timestamp"`
}

// ExperienceRow is one experience grant.
type ExperienceRow struct {
	bun.BaseModel `bun:"table:xp_log,alias:x"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     string    `bun:"user_id,notnull"`
	Amount     int       `bun:"amount,notnull"`
	Reason     string    `bun:"reason,notnull"`
	EnemyLevel int       `bun:"enemy_level"`
	GrantedAt  time.Time `bun:"granted_at,nullzero,notnull,default:current_timestamp"`
}
