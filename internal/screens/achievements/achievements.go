package achievements

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/catalog"
	"jigasha/internal/progress"
	"jigasha/internal/screen"
	"jigasha/internal/ui/components"
	"jigasha/internal/ui/theme"
)

// AchievementsScreen lists every badge with its unlock state and a
// progress bar toward its threshold.
type AchievementsScreen struct {
	tracker *progress.Tracker
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(tracker *progress.Tracker) *AchievementsScreen {
	return &AchievementsScreen{tracker: tracker}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	stats := s.tracker.Stats()

	var b strings.Builder
	unlockedCount := len(stats.Achievements)
	all := catalog.All()

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", unlockedCount, len(all))))
	b.WriteString("\n\n")

	barWidth := min(30, width-40)
	for _, a := range all {
		unlocked := slices.Contains(stats.Achievements, a.ID)
		cur, maxVal := catalog.Progress(a.ID, stats)

		nameStyle := theme.Selected
		if !unlocked {
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		b.WriteString(fmt.Sprintf("%s  %s\n", a.Icon, nameStyle.Render(a.Name)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + a.Description))
		b.WriteString("\n    ")

		bar := components.NewProgressBar("", float64(cur)/float64(maxVal), false, barWidth)
		b.WriteString(bar.View())
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", cur, maxVal)))
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
