// Package quiz runs one interactive quiz session: it fetches questions
// from the remote bank (falling back to the built-in set when the fetch
// fails), walks the user through them under a per-question timer, and
// reports the final tally to the progress engine.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"jigasha/internal/progress"
	"jigasha/internal/router"
	"jigasha/internal/screen"
	"jigasha/internal/screens/results"
	"jigasha/internal/trivia"
	"jigasha/internal/ui/components"
	"jigasha/internal/ui/layout"
	"jigasha/internal/ui/theme"
)

const fetchTimeout = 15 * time.Second

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
)

// QuizScreen drives one quiz session.
type QuizScreen struct {
	tracker    *progress.Tracker
	client     *trivia.Client
	group      trivia.CategoryGroup
	difficulty string

	phase        phase
	offline      bool // fallback questions in use
	questions    []trivia.Question
	index        int
	correct      int
	choice       components.MultiChoice
	timeLeft     int
	timerGen     int // invalidates tick chains from earlier questions
	started      time.Time
	timerEnabled bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given category group and difficulty.
func New(tracker *progress.Tracker, client *trivia.Client, group trivia.CategoryGroup, difficulty string) *QuizScreen {
	return &QuizScreen{
		tracker:    tracker,
		client:     client,
		group:      group,
		difficulty: difficulty,
	}
}

// questionsLoadedMsg delivers the fetched (or fallback) question set.
type questionsLoadedMsg struct {
	questions []trivia.Question
	offline   bool
}

// timerTickMsg is sent every second to advance the countdown. It
// carries the generation of the question it was armed for so ticks
// from an already-answered question are dropped instead of double
// counting against the next one.
type timerTickMsg struct {
	gen int
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.fetchQuestions()
}

func (q *QuizScreen) Title() string {
	return q.group.Name
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.phase == phaseFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// fetchQuestions loads the question set off the UI loop. A fetch
// failure is not an error for the session: the fallback set keeps the
// quiz playable offline.
func (q *QuizScreen) fetchQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		questions, err := q.client.Fetch(ctx, q.group.ID, q.difficulty, trivia.DefaultQuestionLimit)
		if err != nil || len(questions) == 0 {
			return questionsLoadedMsg{questions: trivia.FallbackQuestions(), offline: true}
		}
		return questionsLoadedMsg{questions: questions}
	}
}

func (q *QuizScreen) tickCmd() tea.Cmd {
	gen := q.timerGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return q.handleLoaded(msg)

	case timerTickMsg:
		return q.handleTick(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	q.questions = msg.questions
	q.offline = msg.offline

	settings := q.tracker.Settings()
	if settings.ShuffleQuestions {
		trivia.ShuffleQuestions(q.questions)
	}
	q.timerEnabled = settings.TimerDuration > 0

	q.started = time.Now()
	q.phase = phaseQuestion
	q.presentQuestion()

	if q.timerEnabled {
		return q, q.tickCmd()
	}
	return q, nil
}

// presentQuestion builds the multi-choice component for the current
// question with shuffled answers and resets the countdown.
func (q *QuizScreen) presentQuestion() {
	question := q.questions[q.index]
	answers := trivia.ShuffledAnswers(question)

	correctIndex := 0
	for i, a := range answers {
		if a == question.CorrectAnswer {
			correctIndex = i
			break
		}
	}

	q.choice = components.NewMultiChoice(question.Text, answers, correctIndex)
	q.timeLeft = q.tracker.Settings().TimerDuration
	q.timerGen++
}

func (q *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != q.timerGen || q.phase != phaseQuestion || !q.timerEnabled {
		return q, nil
	}

	q.timeLeft--
	if q.timeLeft > 0 {
		return q, q.tickCmd()
	}

	// Time up: counts as a wrong answer, straight to feedback.
	q.choice.Submitted = true
	q.choice.ChosenIndex = -1
	q.phase = phaseFeedback
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseLoading:
		return q, nil

	case phaseFeedback:
		// Any key advances.
		return q.advance()

	default:
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Submitted {
			if q.choice.ChosenIndex == q.choice.CorrectIndex {
				q.correct++
			}
			q.phase = phaseFeedback
		}
		return q, cmd
	}
}

// advance moves to the next question, or finishes the session.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	q.index++
	if q.index < len(q.questions) {
		q.phase = phaseQuestion
		q.presentQuestion()
		if q.timerEnabled {
			return q, q.tickCmd()
		}
		return q, nil
	}
	return q, q.finish()
}

// finish records the attempt with the engine and shows the results
// screen in place of this one.
func (q *QuizScreen) finish() tea.Cmd {
	before := len(q.tracker.Achievements())
	result := q.tracker.AddResult(context.Background(), progress.Attempt{
		Category:       q.group.ID,
		Difficulty:     q.difficulty,
		Correct:        q.correct,
		TotalQuestions: len(q.questions),
		TimeSpent:      int(time.Since(q.started).Seconds()),
	})
	// Achievements are append-only, so anything past the old length
	// was unlocked by this attempt.
	unlocked := q.tracker.Achievements()[before:]

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(q.tracker, result, unlocked)}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.phase == phaseLoading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Fetching questions...")
	}

	var b strings.Builder

	// Progress and countdown line.
	status := fmt.Sprintf("Question %d of %d", q.index+1, len(q.questions))
	if q.timerEnabled && q.phase == phaseQuestion {
		status += fmt.Sprintf("   ⏱ %ds", q.timeLeft)
	}
	if q.offline {
		status += "   (offline set)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(status))
	b.WriteString("\n\n")

	b.WriteString(q.choice.View())

	if q.phase == phaseFeedback {
		b.WriteString("\n")
		if q.choice.ChosenIndex == q.choice.CorrectIndex {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else if q.choice.ChosenIndex < 0 {
			b.WriteString(theme.Incorrect.Render("Time's up!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
	}

	card := theme.Card.Width(width - 4).Render(b.String())
	return lipgloss.NewStyle().Height(height).Render(card)
}
