// Package quickaction synthesizes the three canned follow-up prompts
// (summary, quiz, flashcards) from the latest assistant answer. These are
// derived user prompts, not a separate model capability, and always run with
// web search off.
package quickaction

import "fmt"

type Action string

const (
	ActionSummarize  Action = "summarize"
	ActionQuiz       Action = "quiz"
	ActionFlashcards Action = "flashcards"
)

const (
	summarizeTemplate  = "Please summarize the key points from the following text in a few bullet points:\n\n\"%s\""
	quizTemplate       = "Based on the following text, create a 3-question multiple-choice quiz to test my understanding. Provide the correct answers at the end:\n\n\"%s\""
	flashcardsTemplate = "Generate 3-5 flashcards from the following text. Format them as \"Term: [Term]\nDefinition: [Definition]\".\n\n\"%s\""
)

// IsValid reports whether a is one of the three fixed actions.
func IsValid(a Action) bool {
	switch a {
	case ActionSummarize, ActionQuiz, ActionFlashcards:
		return true
	}
	return false
}

// Prompt renders the template for a around the last assistant answer.
// Unknown actions return ok=false.
func Prompt(a Action, lastAnswer string) (string, bool) {
	switch a {
	case ActionSummarize:
		return fmt.Sprintf(summarizeTemplate, lastAnswer), true
	case ActionQuiz:
		return fmt.Sprintf(quizTemplate, lastAnswer), true
	case ActionFlashcards:
		return fmt.Sprintf(flashcardsTemplate, lastAnswer), true
	default:
		return "", false
	}
}
