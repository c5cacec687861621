package service

import (
	"context"
	"errors"
	"log"
	"time"

	"ai-studymate-be/internal/constant"
	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/internal/repository/memory"
	"ai-studymate-be/pkg/extract"
	"ai-studymate-be/pkg/gemini"
	"ai-studymate-be/pkg/prompt"
	"ai-studymate-be/pkg/quickaction"

	"github.com/google/uuid"
)

var ErrOnboardingRequired = errors.New("onboarding required before chatting")

// ContentGenerator is the single wire-level boundary of the application.
// The gemini client implements it; tests substitute fakes.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, request *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	QuickAction(ctx context.Context, req *dto.QuickActionRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context) (*dto.GetHistoryResponse, error)
}

// chatService assembles one structured request per user message from the
// current state (prompt, staged files, profile, search toggle) and
// normalizes the reply back into display-ready turns.
type chatService struct {
	profileRepo contract.UserProfileRepository
	convRepo    *memory.ConversationRepository
	fileRepo    *memory.StagedFileRepository
	generator   ContentGenerator
}

func NewChatService(
	profileRepo contract.UserProfileRepository,
	convRepo *memory.ConversationRepository,
	fileRepo *memory.StagedFileRepository,
	generator ContentGenerator,
) IChatService {
	return &chatService{
		profileRepo: profileRepo,
		convRepo:    convRepo,
		fileRepo:    fileRepo,
		generator:   generator,
	}
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	profile, err := s.profileRepo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrOnboardingRequired
	}

	// Single in-flight guard: a send while a generation is running is
	// ignored, not queued.
	if !s.convRepo.BeginExchange() {
		log.Printf("[INFO] Send ignored: a generation is already in flight")
		return &dto.SendMessageResponse{Ignored: true}, nil
	}
	defer s.convRepo.EndExchange()

	sent := &entity.ConversationTurn{
		Id:        uuid.New(),
		Role:      constant.TurnRoleUser,
		Text:      req.Message,
		Citations: []entity.Citation{},
		CreatedAt: time.Now(),
	}
	s.convRepo.Append(sent)

	reply := s.generate(ctx, req.Message, profile, req.UseWebSearch)
	s.convRepo.Append(reply)

	return &dto.SendMessageResponse{
		Sent:  mapper.ConversationTurnToResponse(sent),
		Reply: mapper.ConversationTurnToResponse(reply),
	}, nil
}

// QuickAction derives a canned prompt from the latest assistant turn and
// runs it through the normal send path with web search forced off. Without
// a prior assistant turn it is a no-op.
func (s *chatService) QuickAction(ctx context.Context, req *dto.QuickActionRequest) (*dto.SendMessageResponse, error) {
	last := s.convRepo.LastAssistantTurn()
	if last == nil {
		return &dto.SendMessageResponse{Ignored: true}, nil
	}

	derived, ok := quickaction.Prompt(quickaction.Action(req.Action), last.Text)
	if !ok {
		return &dto.SendMessageResponse{Ignored: true}, nil
	}

	return s.SendMessage(ctx, &dto.SendMessageRequest{
		Message:      derived,
		UseWebSearch: false,
	})
}

func (s *chatService) GetHistory(ctx context.Context) (*dto.GetHistoryResponse, error) {
	return &dto.GetHistoryResponse{
		Turns:   mapper.ConversationTurnsToResponse(s.convRepo.Turns()),
		Loading: s.convRepo.IsBusy(),
	}, nil
}

// generate performs one backend exchange and always returns the assistant
// turn to append: the normalized answer on success, the fixed apology turn
// on any failure. Failure causes are logged, never classified downstream.
func (s *chatService) generate(ctx context.Context, message string, profile *entity.UserProfile, useWebSearch bool) *entity.ConversationTurn {
	request := s.assembleRequest(message, profile, useWebSearch)

	response, err := s.generator.GenerateContent(ctx, request)
	if err != nil {
		log.Printf("[ERROR] Generation failed: %v", err)
		return &entity.ConversationTurn{
			Id:        uuid.New(),
			Role:      constant.TurnRoleAssistant,
			Text:      constant.ApologyTurn,
			Citations: []entity.Citation{},
			CreatedAt: time.Now(),
		}
	}

	citations := make([]entity.Citation, 0)
	for _, source := range response.Sources() {
		citations = append(citations, entity.Citation{Uri: source.Uri, Title: source.Title})
	}

	return &entity.ConversationTurn{
		Id:        uuid.New(),
		Role:      constant.TurnRoleAssistant,
		Text:      response.Text(),
		Citations: citations,
		CreatedAt: time.Now(),
	}
}

// assembleRequest builds the outbound request deterministically: supported
// text files become one labeled context block ahead of the question,
// supported images become inline parts placed before the text, and the
// search toggle only ever adds the googleSearch tool. Files still
// processing, in error, or unsupported never contribute.
func (s *chatService) assembleRequest(message string, profile *entity.UserProfile, useWebSearch bool) *gemini.GenerateRequest {
	var contexts []prompt.FileContext
	var imageParts []*gemini.Part

	for _, f := range s.fileRepo.List() {
		if f.Status != entity.StagedFileStatusCompleted || !f.IsSupported {
			continue
		}
		if extract.Classify(f.MimeType) == extract.KindImage {
			imageParts = append(imageParts, &gemini.Part{
				InlineData: &gemini.InlineData{
					MimeType: f.MimeType,
					Data:     f.Content,
				},
			})
			continue
		}
		contexts = append(contexts, prompt.FileContext{Name: f.Name, Content: f.Content})
	}

	parts := append(imageParts, &gemini.Part{
		Text: prompt.BuildQuestion(message, contexts),
	})

	request := &gemini.GenerateRequest{
		Contents: []*gemini.Content{{
			Role:  constant.TurnRoleUser,
			Parts: parts,
		}},
		SystemInstruction: &gemini.Content{
			Parts: []*gemini.Part{{
				Text: constant.SystemInstruction(profile.Level, profile.Subject),
			}},
		},
	}
	if useWebSearch {
		request.Tools = []*gemini.Tool{{GoogleSearch: &gemini.GoogleSearch{}}}
	}
	return request
}
