// Package setup is the pre-quiz screen: pick a category group, then a
// difficulty, then hand off to the quiz screen.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/router"
	"jigasha/internal/screen"
	"jigasha/internal/screens/quiz"
	"jigasha/internal/trivia"
	"jigasha/internal/ui/components"
	"jigasha/internal/ui/layout"
	"jigasha/internal/ui/theme"
)

type stage int

const (
	pickCategory stage = iota
	pickDifficulty
)

// SetupScreen walks the user through category and difficulty selection.
type SetupScreen struct {
	tracker *progress.Tracker
	client  *trivia.Client

	stage    stage
	group    trivia.CategoryGroup
	catMenu  components.Menu
	diffMenu components.Menu
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(tracker *progress.Tracker, client *trivia.Client) *SetupScreen {
	s := &SetupScreen{tracker: tracker, client: client}

	var catItems []components.MenuItem
	for _, g := range trivia.Groups() {
		group := g
		catItems = append(catItems, components.MenuItem{
			Label: group.Icon + "  " + group.Name,
			Action: func() tea.Cmd {
				s.group = group
				s.stage = pickDifficulty
				return nil
			},
		})
	}
	s.catMenu = components.NewMenu(catItems)

	var diffItems []components.MenuItem
	for _, d := range trivia.Difficulties() {
		difficulty := d
		diffItems = append(diffItems, components.MenuItem{
			Label: strings.ToUpper(difficulty[:1]) + difficulty[1:],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quiz.New(s.tracker, s.client, s.group, difficulty),
					}
				}
			},
		})
	}
	s.diffMenu = components.NewMenu(diffItems)

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.stage {
	case pickCategory:
		s.catMenu, cmd = s.catMenu.Update(msg)
	case pickDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	prompt := "Pick a category"
	menu := s.catMenu.View()
	if s.stage == pickDifficulty {
		prompt = s.group.Name + " — pick a difficulty"
		menu = s.diffMenu.View()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
