package entity

import (
	"time"

	"github.com/google/uuid"
)

// Citation is a web source the backend reports having consulted. Attached
// only to assistant turns that used search grounding.
type Citation struct {
	Uri   string
	Title string
}

// ConversationTurn is immutable once appended; the append order is the
// display order.
type ConversationTurn struct {
	Id        uuid.UUID
	Role      string
	Text      string
	Citations []Citation
	CreatedAt time.Time
}
