package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdungeon/internal/ui/theme"
)

// HealthBar displays a labelled horizontal health bar. The fill turns from
// green to red below the low-health threshold.
type HealthBar struct {
	Label string
	HP    int
	MaxHP int
	Width int
}

const lowHealthPercent = 30

// NewHealthBar creates a new health bar.
func NewHealthBar(label string, hp, maxHP, width int) HealthBar {
	return HealthBar{
		Label: label,
		HP:    hp,
		MaxHP: maxHP,
		Width: width,
	}
}

// View renders the health bar.
func (h HealthBar) View() string {
	var result string

	if h.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(h.Label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d", h.HP, h.MaxHP)

	barWidth := h.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if h.MaxHP > 0 {
		filled = barWidth * h.HP / h.MaxHP
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.HealthHigh
	if h.MaxHP > 0 && h.HP*100 < h.MaxHP*lowHealthPercent {
		fillStyle = theme.HealthLow
	}

	result += fillStyle.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	return result
}
