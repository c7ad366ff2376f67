package stats

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/screen"
	"jigasha/internal/ui/theme"
)

const recentGames = 10

// StatsScreen renders the aggregate statistics and recent games.
type StatsScreen struct {
	tracker *progress.Tracker
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(tracker *progress.Tracker) *StatsScreen {
	return &StatsScreen{tracker: tracker}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	st := s.tracker.Stats()
	history := s.tracker.History(0)

	// Answer-level accuracy over the retained window, before penalty.
	totalQuestions, correctAnswers := 0, 0
	for _, r := range history {
		totalQuestions += r.TotalQuestions
		correctAnswers += r.RawScore
	}
	accuracy := progress.Percentage(correctAnswers, totalQuestions)

	rows := []struct {
		label string
		value string
	}{
		{"Games played", fmt.Sprint(st.GamesPlayed)},
		{"Total score", fmt.Sprint(st.TotalScore)},
		{"Average score", fmt.Sprintf("%d%%", st.AverageScore)},
		{"Best score", fmt.Sprintf("%d%%", st.BestScore)},
		{"Accuracy", fmt.Sprintf("%d%% (%d / %d correct)", accuracy, correctAnswers, totalQuestions)},
		{"Current streak", fmt.Sprint(st.StreakCurrent)},
		{"Best streak", fmt.Sprint(st.StreakBest)},
		{"Categories played", fmt.Sprint(len(st.CategoriesPlayed))},
		{"Time played", formatDuration(st.TotalTimeSpent)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-18s", row.label)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(row.value))
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Recent games"))
		b.WriteString("\n")
		n := min(recentGames, len(history))
		for _, r := range history[:n] {
			line := fmt.Sprintf("%s  %-24s %-8s %3d%%",
				r.Time().Format("Jan 02 15:04"), r.Category, r.Difficulty, r.Percentage)
			style := theme.Incorrect
			if r.Percentage >= progress.WinThreshold {
				style = theme.Correct
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	card := theme.Card.Width(width - 4).Render(b.String())
	return lipgloss.NewStyle().Height(height).Render(card)
}

// formatDuration renders total seconds as "3h 24m" / "12m 5s".
func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), seconds%60)
}
