package trivia

import "math/rand"

// CategoryGroup is a user-facing grouping of the API's subcategories.
type CategoryGroup struct {
	ID   string
	Name string
	Icon string
}

// Groups returns the category groups in display order.
func Groups() []CategoryGroup {
	return []CategoryGroup{
		{"entertainment_lifestyle", "Entertainment & Lifestyle", "🎬"},
		{"knowledge_society", "Knowledge & Society", "🌍"},
		{"science_nature", "Science & Nature", "🔬"},
		{"business_technology", "Business & Technology", "💼"},
		{"mind_belief", "Mind & Belief", "🧘"},
		{"logic_medical", "Logic & Medical", "🩺"},
	}
}

// Difficulties returns the supported difficulty tags.
func Difficulties() []string {
	return []string{"easy", "medium", "hard"}
}

// groupSubcategories maps a category group to the API subcategories it
// queries. An empty list means the group queries without a category
// filter and draws from the whole bank.
var groupSubcategories = map[string][]string{
	"entertainment_lifestyle": {"arts_and_literature", "film_and_tv", "music", "food_and_drink"},
	"knowledge_society":       {"general_knowledge", "society_and_culture", "history", "geography"},
	"science_nature":          {"science"},
	"business_technology":     {},
	"mind_belief":             {},
	"logic_medical":           {"sport_and_leisure"},
}

// SubcategoriesFor returns the API subcategories queried for a group.
// A known group with an empty mapping returns an empty slice, meaning
// no category filter; unknown groups pass the group id through
// unchanged.
func SubcategoriesFor(group string) []string {
	subs, ok := groupSubcategories[group]
	if !ok {
		return []string{group}
	}
	return subs
}

// ShuffledAnswers returns the question's answers in random order.
func ShuffledAnswers(q Question) []string {
	answers := append([]string{q.CorrectAnswer}, q.IncorrectAnswers...)
	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	return answers
}

// ShuffleQuestions randomizes question order in place.
func ShuffleQuestions(questions []Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
