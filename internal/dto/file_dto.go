package dto

import (
	"time"

	"github.com/google/uuid"
)

type StagedFileResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	Content     string    `json:"content"`
	IsSupported bool      `json:"is_supported"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublishExtractFileMessage is the event bus payload that hands one staged
// file's raw bytes to the extractor.
type PublishExtractFileMessage struct {
	FileId   uuid.UUID `json:"file_id"`
	Name     string    `json:"name"`
	MimeType string    `json:"mime_type"`
	Data     []byte    `json:"data"`
}

// StagedFileNotification is pushed over the websocket whenever a staged
// file changes status.
type StagedFileNotification struct {
	File *StagedFileResponse `json:"file"`
}
