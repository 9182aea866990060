package encounter

import (
	"time"

	"quizdungeon/internal/combat"
)

// engagedMsg is sent when the async engagement attempt finishes.
type engagedMsg struct {
	Session *combat.Session
	Err     error
}

// roundMsg is sent when the next question has been selected.
type roundMsg struct {
	Round *combat.Round
	Err   error
}

// countdownMsg is sent every second while a round is open. Token pins it to
// one round; a tick that outlives its round is dropped.
type countdownMsg struct {
	Token int
	At    time.Time
}

// feedbackDoneMsg is sent when the result display period ends.
type feedbackDoneMsg struct{}

// concludedMsg is sent when the encounter has been settled.
type concludedMsg struct {
	Report *combat.Report
	Level  int
}
