package prompt

import (
	"strings"
	"testing"
)

func TestBuildQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		files    []FileContext
		want     string
	}{
		{
			name:     "no files emits question alone",
			question: "What is photosynthesis?",
			files:    nil,
			want:     "USER'S QUESTION: What is photosynthesis?",
		},
		{
			name:     "single file wraps context in markers",
			question: "Summarize this",
			files: []FileContext{
				{Name: "notes.txt", Content: "Chlorophyll absorbs light."},
			},
			want: "CONTEXT FROM UPLOADED FILES:\n" +
				"--- File: notes.txt ---\nChlorophyll absorbs light.\n\n" +
				"--- END OF FILE CONTEXT ---\n\n" +
				"USER'S QUESTION: Summarize this",
		},
		{
			name:     "multiple files are blank-line separated",
			question: "Compare the files",
			files: []FileContext{
				{Name: "a.txt", Content: "alpha"},
				{Name: "b.txt", Content: "beta"},
			},
			want: "CONTEXT FROM UPLOADED FILES:\n" +
				"--- File: a.txt ---\nalpha\n\n" +
				"--- File: b.txt ---\nbeta\n\n" +
				"--- END OF FILE CONTEXT ---\n\n" +
				"USER'S QUESTION: Compare the files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuestion(tt.question, tt.files); got != tt.want {
				t.Errorf("BuildQuestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQuestionPreservesFileOrder(t *testing.T) {
	files := []FileContext{
		{Name: "first.txt", Content: "1"},
		{Name: "second.txt", Content: "2"},
		{Name: "third.txt", Content: "3"},
	}

	got := BuildQuestion("q", files)

	if strings.Index(got, "first.txt") > strings.Index(got, "second.txt") ||
		strings.Index(got, "second.txt") > strings.Index(got, "third.txt") {
		t.Errorf("BuildQuestion() reordered files: %q", got)
	}
}
