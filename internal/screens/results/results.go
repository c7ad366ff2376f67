package results

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/catalog"
	"jigasha/internal/progress"
	"jigasha/internal/router"
	"jigasha/internal/screen"
	"jigasha/internal/ui/layout"
	"jigasha/internal/ui/theme"
)

// ResultsScreen shows the outcome of a just-finished quiz.
type ResultsScreen struct {
	tracker *progress.Tracker
	result  progress.QuizResult

	// Achievements that were not yet unlocked before this result.
	newlyUnlocked []catalog.Achievement
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a recorded result. unlockedIDs are
// the achievement ids this attempt unlocked (the caller diffs the
// engine's append-only achievement list around the record call).
func New(tracker *progress.Tracker, result progress.QuizResult, unlockedIDs []string) *ResultsScreen {
	s := &ResultsScreen{tracker: tracker, result: result}
	for _, id := range unlockedIDs {
		if a, ok := catalog.Lookup(id); ok {
			s.newlyUnlocked = append(s.newlyUnlocked, a)
		}
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	stats := s.tracker.Stats()

	var b strings.Builder

	heading := "Quiz complete!"
	if r.Percentage == 100 {
		heading = "Perfect score!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	percent := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(auraColor(r.Percentage)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.Percentage))
	b.WriteString(percent)
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Correct answers   %d / %d", r.RawScore, r.TotalQuestions),
		fmt.Sprintf("After penalty     %d points", r.Score),
		fmt.Sprintf("Time              %ds", r.TimeSpent),
		fmt.Sprintf("Current streak    %d", stats.StreakCurrent),
		fmt.Sprintf("Best score        %d%%", stats.BestScore),
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(body))

	if len(s.newlyUnlocked) > 0 {
		b.WriteString("\n\n")
		var badges []string
		for _, a := range s.newlyUnlocked {
			badges = append(badges, a.Icon+" "+a.Name)
		}
		slices.Sort(badges)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Unlocked: " + strings.Join(badges, "   ")))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// auraColor picks the percentage color by the win threshold.
func auraColor(percentage int) color.Color {
	if percentage >= progress.WinThreshold {
		return theme.Success
	}
	return theme.Error
}
