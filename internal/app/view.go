package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-quiz/internal/battle"
	"go-quiz/internal/scoring"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.Screen() {
	case ScreenHome:
		b.WriteString(m.viewHome())
	case ScreenChooseGameType:
		b.WriteString(m.viewChooseGameType())
	case ScreenBattle:
		b.WriteString(m.viewBattle())
	case ScreenResults:
		b.WriteString(m.viewResults())
	case ScreenScoreboard:
		b.WriteString(m.viewScoreboard())
	}

	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " " + m.palette.Muted.Render("Loading..."))
	}
	if m.alert != "" {
		b.WriteString("\n" + m.palette.Alert.Render(m.alert))
	}

	b.WriteString("\n\n" + m.help.View(m.keys.helpFor(m.Screen())))
	return b.String()
}

func (m *Model) renderTabs() string {
	game, board := m.palette.ActiveTab, m.palette.Tab
	if m.Screen() == ScreenScoreboard {
		game, board = board, game
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, game.Render("Game"), board.Render("Scoreboard"))
}

func (m *Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.palette.Title.Render("Quiz"))
	if m.user != nil {
		b.WriteString("\n" + m.palette.Text.Render(fmt.Sprintf("Hi, %s! Score: %d", m.user.Name, m.user.Score)))
	}
	b.WriteString("\n\n" + m.palette.Text.Render("[s] Single game   [m] Multiplayer"))
	return b.String()
}

func (m *Model) viewChooseGameType() string {
	var b strings.Builder
	b.WriteString(m.palette.Title.Render("Choose a topic"))
	b.WriteString("\n")
	for i, t := range m.gameTypes {
		b.WriteString("\n" + m.option(string(t), i == m.cursor))
	}
	return b.String()
}

func (m *Model) viewBattle() string {
	q := m.battle.ActiveQuestion
	if q == nil {
		return m.palette.Muted.Render("Preparing questions...")
	}

	var b strings.Builder
	n, total := m.battle.Progress()
	status := fmt.Sprintf("QUESTION %d/%d", n, total)
	if m.deps.QuestionTime > 0 && !q.Answered() {
		style := m.palette.Timer
		if m.timeLeft <= int(m.deps.QuestionTime.Seconds())/3 {
			style = m.palette.Urgent
		}
		status += " | TIME: " + style.Render(fmt.Sprintf("%02d:%02d", m.timeLeft/60, m.timeLeft%60))
	}
	b.WriteString(m.palette.Muted.Render(status))
	b.WriteString("\n\n" + m.palette.Title.Render(q.Text) + "\n")

	for i, opt := range q.Options {
		b.WriteString("\n" + m.renderOption(q, opt, i))
	}

	if a := q.Answer; a != nil {
		b.WriteString("\n\n" + m.renderVerdict(*a))
		next := "Next question"
		if !m.battle.HasNextQuestion {
			next = "See results"
		}
		b.WriteString("\n" + m.palette.Muted.Render("[enter] "+next))
	}
	return b.String()
}

func (m *Model) renderOption(q *battle.Question, opt string, i int) string {
	a := q.Answer
	if a == nil {
		return m.option(opt, i == m.cursor)
	}
	switch {
	case opt == a.Correct:
		return m.palette.Correct.Render("  ✓ " + opt)
	case opt == a.Given:
		return m.palette.Wrong.Render("  ✗ " + opt)
	default:
		return m.palette.Muted.Render("    " + opt)
	}
}

func (m *Model) renderVerdict(a battle.Answer) string {
	switch {
	case a.TimedOut:
		return m.palette.Wrong.Render("Time's up!")
	case a.IsCorrect:
		return m.palette.Correct.Render(fmt.Sprintf("Correct! +%d", a.Points))
	default:
		return m.palette.Wrong.Render("Wrong answer")
	}
}

func (m *Model) viewResults() string {
	if m.results == nil {
		return ""
	}
	s := scoring.Summarize(*m.results)

	var b strings.Builder
	b.WriteString(m.palette.Title.Render("Results"))
	b.WriteString("\n\n")
	line := fmt.Sprintf("Correct: %d/%d | Points: %d", s.Correct, s.Total, s.Points)
	if s.TimedOut > 0 {
		line += fmt.Sprintf(" | Timed out: %d", s.TimedOut)
	}
	b.WriteString(m.palette.Text.Render(line))
	if s.Perfect() {
		b.WriteString("\n" + m.palette.Correct.Render("Flawless!"))
	}
	if m.user != nil {
		b.WriteString("\n" + m.palette.Muted.Render(fmt.Sprintf("Total score: %d", m.user.Score)))
	}
	return b.String()
}

func (m *Model) viewScoreboard() string {
	var b strings.Builder
	b.WriteString(m.palette.Title.Render("Scoreboard"))
	b.WriteString("\n")
	if len(m.scoreboard) == 0 && !m.loading {
		b.WriteString("\n" + m.palette.Muted.Render("No games played yet."))
	}
	for i, e := range m.scoreboard {
		b.WriteString("\n" + m.palette.Text.Render(fmt.Sprintf("%2d. %-16s %6d", i+1, e.Name, e.Score)))
	}
	return b.String()
}

func (m *Model) option(text string, selected bool) string {
	if selected {
		return "> " + m.palette.Selected.Render(text)
	}
	return "  " + m.palette.Text.Render(text)
}
