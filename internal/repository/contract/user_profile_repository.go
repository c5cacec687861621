package contract

import (
	"context"

	"ai-studymate-be/internal/entity"
)

type UserProfileRepository interface {
	// Find returns the stored profile, or nil when onboarding has not
	// happened yet.
	Find(ctx context.Context) (*entity.UserProfile, error)
	// Save replaces the single profile record wholesale.
	Save(ctx context.Context, profile *entity.UserProfile) error
	// Delete removes the record; no-op when absent.
	Delete(ctx context.Context) error
}
