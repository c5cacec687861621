package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message      string `json:"message" validate:"required"`
	UseWebSearch bool   `json:"use_web_search"`
}

type QuickActionRequest struct {
	Action string `json:"action" validate:"required,oneof=summarize quiz flashcards"`
}

type CitationDTO struct {
	Uri   string `json:"uri"`
	Title string `json:"title"`
}

type ConversationTurnResponse struct {
	Id        uuid.UUID     `json:"id"`
	Role      string        `json:"role"`
	Text      string        `json:"text"`
	Citations []CitationDTO `json:"citations,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// SendMessageResponse reports both sides of one exchange. Ignored is set
// when a generation was already in flight and the send was dropped without
// touching the transcript.
type SendMessageResponse struct {
	Sent    *ConversationTurnResponse `json:"sent,omitempty"`
	Reply   *ConversationTurnResponse `json:"reply,omitempty"`
	Ignored bool                      `json:"ignored,omitempty"`
}

type GetHistoryResponse struct {
	Turns   []*ConversationTurnResponse `json:"turns"`
	Loading bool                        `json:"loading"`
}
