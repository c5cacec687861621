package constant

import "fmt"

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Education levels offered during onboarding. The list is fixed; the subject
// is free text.
var EducationLevels = []string{
	"Elementary School (K-5)",
	"Middle School (6-8)",
	"High School (9-12)",
	"College Prep",
	"Undergraduate",
	"Graduate",
	"Master's",
	"Doctoral",
	"Professional Development",
}

// IsEducationLevel reports whether level is one of the fixed onboarding values.
func IsEducationLevel(level string) bool {
	for _, l := range EducationLevels {
		if l == level {
			return true
		}
	}
	return false
}

const (
	WelcomeTurnTemplate = "Hello! I'm your AI StudyMate. I've tailored my responses for a %s level in %s. Let's get started!"

	WelcomeBackTurnTemplate = "Welcome back to StudyMate Pro! How can I help you with your %s studies today?"

	// Shown as a single assistant turn whenever a generation call fails,
	// regardless of the failure cause.
	ApologyTurn = "Sorry, I encountered an error. Please check your API key and try again."
)

// SystemInstructionTemplate parameterizes the backend's persona with the
// user's level and subject. Passed as the systemInstruction of every
// generateContent call.
const SystemInstructionTemplate = `You are StudyMate Pro AI, an expert educator and learning assistant. Your user is at the "%s" level, studying "%s".
- Adapt your language, complexity, and examples to be perfectly suited for this educational level.
- Be encouraging, clear, and supportive.
- If file context is provided, prioritize it in your answer.
- If web search is enabled and the question requires current information, use it.
- ALWAYS provide comprehensive, accurate, and helpful answers.`

func WelcomeTurn(level, subject string) string {
	return fmt.Sprintf(WelcomeTurnTemplate, level, subject)
}

func WelcomeBackTurn(subject string) string {
	return fmt.Sprintf(WelcomeBackTurnTemplate, subject)
}

func SystemInstruction(level, subject string) string {
	return fmt.Sprintf(SystemInstructionTemplate, level, subject)
}
