// Package profile holds the style questionnaire and the LLM-backed
// first-person style-profile generator. Both sit outside the extraction
// core: the profile paragraph is what downstream retrieval queries with.
package profile

import "math/rand"

// QuestionType is the input widget a question expects
type QuestionType string

const (
	TypeRadio       QuestionType = "radio"
	TypeMultiSelect QuestionType = "multiselect"
	TypeText        QuestionType = "text"
)

// Question is one questionnaire entry
type Question struct {
	ID      string       `json:"id" yaml:"id"`
	Label   string       `json:"label" yaml:"label"`
	Type    QuestionType `json:"type" yaml:"type"`
	Options []string     `json:"options,omitempty" yaml:"options,omitempty"`
}

// genderQuestion always leads the questionnaire
var genderQuestion = Question{
	ID:      "gender",
	Label:   "Gender",
	Type:    TypeRadio,
	Options: []string{"Male", "Female", "Non-Binary", "Prefer not to say"},
}

var questionBank = []Question{
	{
		ID:    "name",
		Label: "What should we call you?",
		Type:  TypeText,
	},
	{
		ID:      "age_range",
		Label:   "Your age range",
		Type:    TypeRadio,
		Options: []string{"18-24", "25-34", "35-44", "45-54", "55+"},
	},
	{
		ID:    "style_goal",
		Label: "What's your main style goal?",
		Type:  TypeMultiSelect,
		Options: []string{
			"Complement my natural features",
			"Looking chic and fashionable",
			"Standing out from the crowd",
			"Shopping smart and buying less",
		},
	},
	{
		ID:      "difficult_occasion",
		Label:   "Which occasions are hardest to dress for?",
		Type:    TypeMultiSelect,
		Options: []string{"Work", "Workout", "Party", "Everyday", "Weekend", "Beach Wear"},
	},
	{
		ID:      "style_preference",
		Label:   "Style Preference",
		Type:    TypeMultiSelect,
		Options: []string{"Trendy", "Timeless"},
	},
	{
		ID:      "preferred_fit",
		Label:   "Preferred Fit",
		Type:    TypeRadio,
		Options: []string{"Slim Fit", "Regular Fit", "Relaxed Fit"},
	},
	{
		ID:      "outfit_boldness",
		Label:   "Outfit Boldness",
		Type:    TypeRadio,
		Options: []string{"Safe & Classic", "Balanced", "Edgy & Daring"},
	},
	{
		ID:      "color_comfort",
		Label:   "Color Comfort",
		Type:    TypeRadio,
		Options: []string{"Neutrals & Basics", "Moderate Color", "Bright & Vibrant"},
	},
}

// RandomQuestions returns the gender question followed by total-1 distinct
// random draws from the bank. total is clamped to the available questions.
func RandomQuestions(total int) []Question {
	remaining := total - 1
	if remaining < 0 {
		remaining = 0
	}
	if remaining > len(questionBank) {
		remaining = len(questionBank)
	}

	questions := []Question{genderQuestion}
	for _, i := range rand.Perm(len(questionBank))[:remaining] {
		questions = append(questions, questionBank[i])
	}
	return questions
}

// BankSize returns the number of questions in the bank, excluding gender
func BankSize() int {
	return len(questionBank)
}
