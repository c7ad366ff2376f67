// Package settings lets the user adjust quiz preferences. Changes are
// applied immediately through the tracker.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/screen"
	"jigasha/internal/ui/components"
	"jigasha/internal/ui/layout"
	"jigasha/internal/ui/theme"
)

var (
	themeValues    = []string{"system", "light", "dark"}
	fontSizeValues = []string{"small", "medium", "large"}
)

const (
	rowTheme = iota
	rowSound
	rowTimer
	rowShuffle
	rowFontSize
	rowRestore
	rowCount
)

// SettingsScreen edits user settings row by row.
type SettingsScreen struct {
	tracker *progress.Tracker

	cursor       int
	editingTimer bool
	timerInput   components.TextInput
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(tracker *progress.Tracker) *SettingsScreen {
	return &SettingsScreen{tracker: tracker}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editingTimer {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editingTimer {
		return s.updateTimerInput(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
	case "enter", " ", "left", "right":
		s.activate(kmsg.String())
	}
	return s, nil
}

func (s *SettingsScreen) updateTimerInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if secs, err := s.timerInput.NumericValue(); err == nil && secs >= 0 && secs <= 300 {
			s.tracker.UpdateSettings(context.Background(), progress.SettingsPatch{TimerDuration: &secs})
			s.editingTimer = false
			return s, nil
		}
		s.timerInput.Submit(false)
		return s, nil
	}

	var cmd tea.Cmd
	s.timerInput, cmd = s.timerInput.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) activate(key string) {
	cur := s.tracker.Settings()
	switch s.cursor {
	case rowTheme:
		next := cycle(themeValues, cur.Theme, key != "left")
		s.tracker.UpdateSettings(context.Background(), progress.SettingsPatch{Theme: &next})
	case rowSound:
		next := !cur.SoundEnabled
		s.tracker.UpdateSettings(context.Background(), progress.SettingsPatch{SoundEnabled: &next})
	case rowTimer:
		s.timerInput = components.NewTextInput(fmt.Sprintf("%d", cur.TimerDuration), true, 3)
		s.editingTimer = true
	case rowShuffle:
		next := !cur.ShuffleQuestions
		s.tracker.UpdateSettings(context.Background(), progress.SettingsPatch{ShuffleQuestions: &next})
	case rowFontSize:
		next := cycle(fontSizeValues, cur.FontSize, key != "left")
		s.tracker.UpdateSettings(context.Background(), progress.SettingsPatch{FontSize: &next})
	case rowRestore:
		if key == "enter" || key == " " {
			s.tracker.ResetSettings(context.Background())
		}
	}
}

// cycle returns the next (or previous) value in order, wrapping around.
// Unknown current values restart at the first entry.
func cycle(values []string, current string, forward bool) string {
	for i, v := range values {
		if v != current {
			continue
		}
		if forward {
			return values[(i+1)%len(values)]
		}
		return values[(i+len(values)-1)%len(values)]
	}
	return values[0]
}

func (s *SettingsScreen) View(width, height int) string {
	cur := s.tracker.Settings()

	onOff := func(b bool) string {
		if b {
			return "On"
		}
		return "Off"
	}

	timerValue := fmt.Sprintf("%ds per question", cur.TimerDuration)
	if cur.TimerDuration == 0 {
		timerValue = "Off"
	}
	if s.editingTimer {
		timerValue = s.timerInput.View() + " seconds"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Theme", cur.Theme},
		{"Sound", onOff(cur.SoundEnabled)},
		{"Timer", timerValue},
		{"Shuffle questions", onOff(cur.ShuffleQuestions)},
		{"Font size", cur.FontSize},
		{"Restore defaults", ""},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		labelStyle := theme.Unselected
		if i == s.cursor {
			marker = "› "
			labelStyle = theme.Selected
		}

		b.WriteString(labelStyle.Render(marker + fmt.Sprintf("%-20s", row.label)))
		if row.value != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(row.value))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
