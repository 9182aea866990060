package screen

import (
	tea "charm.land/bubbletea/v2"

	"quizdungeon/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusMsg announces the player standing shown in the header. Screens emit
// it whenever health or level changes; the app caches the latest one.
type StatusMsg struct {
	HP    int
	MaxHP int
	Level int
}

// Closer is an optional interface for screens that hold live state. The
// router calls Close when the screen leaves the stack, so an in-flight
// encounter can cancel its timers and round state.
type Closer interface {
	Close()
}
