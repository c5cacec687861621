// Package prompt assembles the single text block sent to the model: an
// optional labeled context section built from staged file contents, followed
// by the user's question.
package prompt

import (
	"fmt"
	"strings"
)

// FileContext is one supported non-image file contributing text context.
type FileContext struct {
	Name    string
	Content string
}

const (
	contextHeader = "CONTEXT FROM UPLOADED FILES:"
	contextFooter = "--- END OF FILE CONTEXT ---"
	questionLabel = "USER'S QUESTION:"
)

// BuildQuestion composes the outbound text block. With no files the question
// is emitted alone, without any context markers.
func BuildQuestion(question string, files []FileContext) string {
	var b strings.Builder

	if len(files) > 0 {
		sections := make([]string, 0, len(files))
		for _, f := range files {
			sections = append(sections, fmt.Sprintf("--- File: %s ---\n%s", f.Name, f.Content))
		}
		b.WriteString(contextHeader)
		b.WriteString("\n")
		b.WriteString(strings.Join(sections, "\n\n"))
		b.WriteString("\n\n")
		b.WriteString(contextFooter)
		b.WriteString("\n\n")
	}

	b.WriteString(questionLabel)
	b.WriteString(" ")
	b.WriteString(question)

	return b.String()
}
