package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ai-studymate-be/internal/constant"
	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/pkg/serverutils"
	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/internal/repository/memory"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type IProfileService interface {
	Get(ctx context.Context) (*dto.UserProfileResponse, error)
	CompleteOnboarding(ctx context.Context, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error)
	Reset(ctx context.Context) error
	Warmup(ctx context.Context) error
}

type profileService struct {
	profileRepo contract.UserProfileRepository
	convRepo    *memory.ConversationRepository
	fileRepo    *memory.StagedFileRepository
}

func NewProfileService(
	profileRepo contract.UserProfileRepository,
	convRepo *memory.ConversationRepository,
	fileRepo *memory.StagedFileRepository,
) IProfileService {
	return &profileService{
		profileRepo: profileRepo,
		convRepo:    convRepo,
		fileRepo:    fileRepo,
	}
}

func (s *profileService) Get(ctx context.Context) (*dto.UserProfileResponse, error) {
	profile, err := s.profileRepo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return mapper.UserProfileToResponse(profile), nil
}

// CompleteOnboarding persists the profile and seeds the transcript with the
// welcome turn. Re-running onboarding replaces both.
func (s *profileService) CompleteOnboarding(ctx context.Context, req *dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, serverutils.NewRequestValidationError("subject must not be blank")
	}
	if !constant.IsEducationLevel(req.Level) {
		return nil, serverutils.NewRequestValidationError("level is not one of the supported education levels")
	}

	profile := &entity.UserProfile{
		Level:     req.Level,
		Subject:   subject,
		CreatedAt: time.Now(),
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	welcome := &entity.ConversationTurn{
		Id:        uuid.New(),
		Role:      constant.TurnRoleAssistant,
		Text:      constant.WelcomeTurn(profile.Level, profile.Subject),
		Citations: []entity.Citation{},
		CreatedAt: time.Now(),
	}
	s.convRepo.Replace([]*entity.ConversationTurn{welcome})

	log.Printf("[INFO] Onboarding completed: %s / %s", profile.Level, profile.Subject)

	return &dto.CompleteOnboardingResponse{
		Profile: mapper.UserProfileToResponse(profile),
		Welcome: mapper.ConversationTurnToResponse(welcome),
	}, nil
}

// Reset deletes the profile record and clears staged files. The transcript
// is intentionally left in place; the next onboarding replaces it with a
// fresh welcome turn.
func (s *profileService) Reset(ctx context.Context) error {
	if err := s.profileRepo.Delete(ctx); err != nil {
		return err
	}
	s.fileRepo.Clear()
	log.Printf("[INFO] Profile reset; staged files cleared")
	return nil
}

// Warmup runs once at startup: when a profile survives from an earlier run
// and the transcript is empty, greet the returning user.
func (s *profileService) Warmup(ctx context.Context) error {
	profile, err := s.profileRepo.Find(ctx)
	if err != nil {
		return err
	}
	if profile == nil || len(s.convRepo.Turns()) > 0 {
		return nil
	}

	s.convRepo.Replace([]*entity.ConversationTurn{{
		Id:        uuid.New(),
		Role:      constant.TurnRoleAssistant,
		Text:      constant.WelcomeBackTurn(profile.Subject),
		Citations: []entity.Citation{},
		CreatedAt: time.Now(),
	}})
	return nil
}
