package memory

import (
	"sync"

	"ai-studymate-be/internal/constant"
	"ai-studymate-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const conversationKey = "conversation"

// ConversationRepository holds the append-only transcript and the single
// in-flight guard for the session. Turns never expire; the state lives as
// long as the process.
type ConversationRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
	busy  bool
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Turns returns the transcript in chronological (display) order.
func (r *ConversationRepository) Turns() []*entity.ConversationTurn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.turnsLocked()
}

func (r *ConversationRepository) turnsLocked() []*entity.ConversationTurn {
	if x, found := r.cache.Get(conversationKey); found {
		stored := x.([]*entity.ConversationTurn)
		turns := make([]*entity.ConversationTurn, len(stored))
		copy(turns, stored)
		return turns
	}
	return []*entity.ConversationTurn{}
}

// Append adds one turn at the end of the transcript.
func (r *ConversationRepository) Append(turn *entity.ConversationTurn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	turns := r.turnsLocked()
	r.cache.Set(conversationKey, append(turns, turn), cache.NoExpiration)
}

// Replace swaps the whole transcript, used when onboarding seeds a fresh
// welcome turn.
func (r *ConversationRepository) Replace(turns []*entity.ConversationTurn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(conversationKey, turns, cache.NoExpiration)
}

// LastAssistantTurn returns the most recent assistant turn, or nil when the
// transcript has none.
func (r *ConversationRepository) LastAssistantTurn() *entity.ConversationTurn {
	r.mu.Lock()
	defer r.mu.Unlock()
	turns := r.turnsLocked()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == constant.TurnRoleAssistant {
			return turns[i]
		}
	}
	return nil
}

// BeginExchange claims the single in-flight slot. It returns false when a
// generation is already running; the caller must then ignore the send.
func (r *ConversationRepository) BeginExchange() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy {
		return false
	}
	r.busy = true
	return true
}

// EndExchange releases the in-flight slot.
func (r *ConversationRepository) EndExchange() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
}

// IsBusy reports whether a generation is in flight (the loading flag).
func (r *ConversationRepository) IsBusy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}
