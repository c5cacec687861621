package service

import (
	"context"
	"testing"

	"ai-studymate-be/internal/constant"
	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/serverutils"
	"ai-studymate-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newProfileFixture(existing *entity.UserProfile) (IProfileService, *fakeProfileRepository, *memory.ConversationRepository, *memory.StagedFileRepository) {
	repo := &fakeProfileRepository{profile: existing}
	convRepo := memory.NewConversationRepository()
	fileRepo := memory.NewStagedFileRepository()
	return NewProfileService(repo, convRepo, fileRepo), repo, convRepo, fileRepo
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _, _, _ := newProfileFixture(nil)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCompleteOnboardingSeedsWelcomeTurn(t *testing.T) {
	svc, repo, convRepo, _ := newProfileFixture(nil)

	res, err := svc.CompleteOnboarding(context.Background(), &dto.CompleteOnboardingRequest{
		Level:   "Middle School (6-8)",
		Subject: "History",
	})
	assert.NoError(t, err)
	assert.Equal(t, "History", res.Profile.Subject)
	assert.Equal(t, "History", repo.profile.Subject)

	turns := convRepo.Turns()
	assert.Len(t, turns, 1)
	assert.Equal(t, constant.TurnRoleAssistant, turns[0].Role)
	assert.Equal(t,
		"Hello! I'm your AI StudyMate. I've tailored my responses for a Middle School (6-8) level in History. Let's get started!",
		turns[0].Text)
}

func TestCompleteOnboardingValidation(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		subject string
	}{
		{name: "blank subject", level: "Undergraduate", subject: "   "},
		{name: "unknown level", level: "Kindergarten", subject: "Math"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, convRepo, _ := newProfileFixture(nil)

			_, err := svc.CompleteOnboarding(context.Background(), &dto.CompleteOnboardingRequest{
				Level:   tt.level,
				Subject: tt.subject,
			})
			assert.Error(t, err)
			var validationErr *serverutils.RequestValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Empty(t, convRepo.Turns(), "failed onboarding must not seed the transcript")
		})
	}
}

func TestReonboardingReplacesTranscript(t *testing.T) {
	svc, _, convRepo, _ := newProfileFixture(nil)

	convRepo.Append(&entity.ConversationTurn{Id: uuid.New(), Role: constant.TurnRoleUser, Text: "old chat"})
	convRepo.Append(&entity.ConversationTurn{Id: uuid.New(), Role: constant.TurnRoleAssistant, Text: "old answer"})

	_, err := svc.CompleteOnboarding(context.Background(), &dto.CompleteOnboardingRequest{
		Level:   "Professional Development",
		Subject: "Spanish",
	})
	assert.NoError(t, err)

	turns := convRepo.Turns()
	assert.Len(t, turns, 1, "onboarding starts a fresh transcript")
	assert.Contains(t, turns[0].Text, "Spanish")
}

func TestResetKeepsTranscriptClearsFiles(t *testing.T) {
	svc, repo, convRepo, fileRepo := newProfileFixture(studentProfile())

	convRepo.Append(&entity.ConversationTurn{Id: uuid.New(), Role: constant.TurnRoleUser, Text: "kept"})
	fileRepo.Add(&entity.StagedFile{Id: uuid.New(), Name: "a.txt"})

	err := svc.Reset(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, repo.profile)
	assert.Empty(t, fileRepo.List())
	assert.Len(t, convRepo.Turns(), 1, "reset leaves the transcript alone")
}

func TestWarmupGreetsReturningProfile(t *testing.T) {
	svc, _, convRepo, _ := newProfileFixture(studentProfile())

	err := svc.Warmup(context.Background())
	assert.NoError(t, err)

	turns := convRepo.Turns()
	assert.Len(t, turns, 1)
	assert.Equal(t,
		"Welcome back to StudyMate Pro! How can I help you with your Biology studies today?",
		turns[0].Text)
}

func TestWarmupIsNoopWithoutProfileOrWithTranscript(t *testing.T) {
	// No profile: nothing to greet.
	svc, _, convRepo, _ := newProfileFixture(nil)
	assert.NoError(t, svc.Warmup(context.Background()))
	assert.Empty(t, convRepo.Turns())

	// Existing transcript stays untouched.
	svc, _, convRepo, _ = newProfileFixture(studentProfile())
	convRepo.Append(&entity.ConversationTurn{Id: uuid.New(), Role: constant.TurnRoleUser, Text: "mid-session"})
	assert.NoError(t, svc.Warmup(context.Background()))

	turns := convRepo.Turns()
	assert.Len(t, turns, 1)
	assert.Equal(t, "mid-session", turns[0].Text)
}
