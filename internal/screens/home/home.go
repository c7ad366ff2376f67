package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/router"
	"jigasha/internal/screen"
	"jigasha/internal/screens/achievements"
	"jigasha/internal/screens/history"
	"jigasha/internal/screens/settings"
	"jigasha/internal/screens/setup"
	"jigasha/internal/screens/stats"
	"jigasha/internal/trivia"
	"jigasha/internal/ui/components"
	"jigasha/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	tracker *progress.Tracker
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *progress.Tracker, client *trivia.Client) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(tracker, client)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(tracker)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(tracker)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(tracker)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		tracker: tracker,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("JIGASHA"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("trivia, scored the hard way"))
	b.WriteString("\n\n")

	st := h.tracker.Stats()
	summary := fmt.Sprintf("%d games   best %d%%   streak %d",
		st.GamesPlayed, st.BestScore, st.StreakCurrent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	b.WriteString(menu)

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
