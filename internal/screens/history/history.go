package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/screen"
	"jigasha/internal/ui/theme"
)

const pageSize = 20

// HistoryScreen lists past quiz results, newest first.
type HistoryScreen struct {
	tracker *progress.Tracker
	offset  int
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(tracker *progress.Tracker) *HistoryScreen {
	return &HistoryScreen{tracker: tracker}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	total := len(s.tracker.History(0))
	switch kmsg.String() {
	case "down", "j":
		if s.offset+pageSize < total {
			s.offset += pageSize
		}
	case "up", "k":
		if s.offset >= pageSize {
			s.offset -= pageSize
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	results := s.tracker.History(0)
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No games yet. Play a quiz to build your history!")
	}

	var b strings.Builder
	end := min(s.offset+pageSize, len(results))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Showing %d-%d of %d", s.offset+1, end, len(results))))
	b.WriteString("\n\n")

	for _, r := range results[s.offset:end] {
		scoreStyle := theme.Incorrect
		if r.Percentage >= progress.WinThreshold {
			scoreStyle = theme.Correct
		}
		line := fmt.Sprintf("%s  %-24s %-8s ", r.Time().Format("Jan 02 15:04"), r.Category, r.Difficulty)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString(scoreStyle.Render(fmt.Sprintf("%3d%%", r.Percentage)))
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%d/%d, %ds)", r.RawScore, r.TotalQuestions, r.TimeSpent)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
