package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	StagedFileStatusProcessing = "processing"
	StagedFileStatusCompleted  = "completed"
	StagedFileStatusError      = "error"
)

// StagedFile is a user-selected file held client-side for the session.
// Content is UTF-8 text for text files and base64 for images; it is empty
// until extraction completes.
type StagedFile struct {
	Id          uuid.UUID
	Name        string
	MimeType    string
	Size        int64
	Content     string
	IsSupported bool
	Status      string

	// Seq preserves staging order across the unordered cache.
	Seq       int
	CreatedAt time.Time
}
