package trivia

// FallbackQuestions returns a small built-in question set used when the
// remote bank is unreachable, so a session can still run offline.
func FallbackQuestions() []Question {
	return []Question{
		{
			ID:               "fallback-1",
			Text:             "What is the capital of France?",
			CorrectAnswer:    "Paris",
			IncorrectAnswers: []string{"London", "Berlin", "Madrid"},
			Category:         "geography",
			Difficulty:       "easy",
		},
		{
			ID:               "fallback-2",
			Text:             "Which planet is known as the Red Planet?",
			CorrectAnswer:    "Mars",
			IncorrectAnswers: []string{"Venus", "Jupiter", "Saturn"},
			Category:         "science",
			Difficulty:       "easy",
		},
	}
}
