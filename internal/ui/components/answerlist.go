package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdungeon/internal/ui/theme"
)

// AnswerList presents four numbered answers for an encounter round. After
// Reveal it repaints to show the correct answer in green and a wrong pick in
// red.
type AnswerList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewAnswerList creates an answer list with nothing chosen yet.
func NewAnswerList(options []string, correctIndex int) AnswerList {
	return AnswerList{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Update handles cursor movement. Choice submission is the caller's job so
// number keys and enter can race the round timer there.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if a.Revealed {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	}

	return a, nil
}

// Reveal locks the list and marks chosen as the submitted index
// (or -1 for a timeout).
func (a *AnswerList) Reveal(chosen int) {
	a.Revealed = true
	a.ChosenIndex = chosen
}

// View renders the answer list.
func (a AnswerList) View() string {
	var s string
	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if a.Revealed {
			switch {
			case i == a.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == a.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == a.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
