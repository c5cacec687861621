package mapper

import (
	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
)

func UserProfileToResponse(p *entity.UserProfile) *dto.UserProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.UserProfileResponse{
		Level:     p.Level,
		Subject:   p.Subject,
		CreatedAt: p.CreatedAt,
	}
}

func ConversationTurnToResponse(t *entity.ConversationTurn) *dto.ConversationTurnResponse {
	if t == nil {
		return nil
	}
	citations := make([]dto.CitationDTO, 0, len(t.Citations))
	for _, c := range t.Citations {
		citations = append(citations, dto.CitationDTO{Uri: c.Uri, Title: c.Title})
	}
	return &dto.ConversationTurnResponse{
		Id:        t.Id,
		Role:      t.Role,
		Text:      t.Text,
		Citations: citations,
		CreatedAt: t.CreatedAt,
	}
}

func ConversationTurnsToResponse(turns []*entity.ConversationTurn) []*dto.ConversationTurnResponse {
	out := make([]*dto.ConversationTurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, ConversationTurnToResponse(t))
	}
	return out
}

func StagedFileToResponse(f *entity.StagedFile) *dto.StagedFileResponse {
	if f == nil {
		return nil
	}
	return &dto.StagedFileResponse{
		Id:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		Content:     f.Content,
		IsSupported: f.IsSupported,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
}

func StagedFilesToResponse(files []*entity.StagedFile) []*dto.StagedFileResponse {
	out := make([]*dto.StagedFileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, StagedFileToResponse(f))
	}
	return out
}
