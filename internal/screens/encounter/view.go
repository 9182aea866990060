package encounter

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdungeon/internal/ui/components"
	"quizdungeon/internal/ui/theme"
	"quizdungeon/internal/world"
)

func (e *EncounterScreen) View(width, height int) string {
	var content string
	switch {
	case e.errMsg != "":
		content = e.renderError(width)
	case e.report != nil:
		content = e.renderEpilogue(width)
	case e.session == nil:
		content = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + e.spinner.View() + " " + e.params.Enemy.Name + " stellt sich zum Kampf...")
	default:
		content = e.renderBattle(width)
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(content)
}

func (e *EncounterScreen) renderError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + theme.Incorrect.Render(e.errMsg) + "\n\n" +
			theme.Hint.Render("Beliebige Taste zum Zurückkehren."))
}

// renderBattle shows both health bars, the open question with its countdown,
// or the feedback for the round that just resolved.
func (e *EncounterScreen) renderBattle(width int) string {
	var b strings.Builder

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}

	enemy := e.params.Enemy
	player := e.params.Player

	enemyLabel := fmt.Sprintf("%s (Lv %d)", enemy.Name, enemy.Level)
	b.WriteString("  " + components.NewHealthBar(enemyLabel, enemy.HP, enemy.MaxHP, barWidth).View())
	b.WriteString("\n")
	b.WriteString("  " + components.NewHealthBar("Du", player.HP, world.PlayerMaxHP, barWidth).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if e.round != nil {
		timer := fmt.Sprintf("⏱ %ds", e.remaining)
		timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		if e.remaining <= 3 {
			timerStyle = theme.TimerUrgent
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(timerStyle.Render(timer)))
		b.WriteString("\n\n")

		question := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(e.round.Question.Text)
		b.WriteString(question)
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(e.answers.View()))
		return b.String()
	}

	if e.resolution != nil {
		style := theme.Correct
		if !e.resolution.Correct {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(e.answers.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(e.resolution.Feedback)))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(e.spinner.View() + " Nächste Frage..."))
	return b.String()
}

// renderEpilogue shows the victory or defeat banner.
func (e *EncounterScreen) renderEpilogue(width int) string {
	var lines []string
	switch {
	case e.report.Victory:
		lines = append(lines,
			theme.Correct.Render(fmt.Sprintf("✓ %s besiegt!", e.params.Enemy.Name)))
		if e.report.RewardGranted {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("+%d XP", e.report.RewardXP)))
		} else if e.report.RewardXP > 0 {
			lines = append(lines,
				theme.Hint.Render(fmt.Sprintf("+%d XP (konnte nicht gespeichert werden)", e.report.RewardXP)))
		}
	case e.report.Defeat:
		lines = append(lines, theme.Incorrect.Render("✗ Du wurdest besiegt!"))
	default:
		lines = append(lines, theme.Subtitle.Render("Der Kampf ist vorbei."))
	}
	lines = append(lines, "", theme.Hint.Render("Beliebige Taste zum Zurückkehren."))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + strings.Join(lines, "\n"))
}
