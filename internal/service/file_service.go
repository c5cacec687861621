package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"time"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/repository/memory"

	"github.com/google/uuid"
)

type IFileService interface {
	Stage(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]*dto.StagedFileResponse, error)
	List(ctx context.Context) []*dto.StagedFileResponse
	Remove(ctx context.Context, id uuid.UUID)
}

type fileService struct {
	fileRepo         *memory.StagedFileRepository
	publisherService IPublisherService
	notifier         StagingNotifier
}

func NewFileService(
	fileRepo *memory.StagedFileRepository,
	publisherService IPublisherService,
	notifier StagingNotifier,
) IFileService {
	return &fileService{
		fileRepo:         fileRepo,
		publisherService: publisherService,
		notifier:         notifier,
	}
}

// Stage appends one processing record per selected file and hands the raw
// bytes to the extraction pipeline. Every record is created before any
// extraction result lands, so callers always see N processing entries
// immediately.
func (s *fileService) Stage(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]*dto.StagedFileResponse, error) {
	staged := make([]*dto.StagedFileResponse, 0, len(fileHeaders))

	for _, header := range fileHeaders {
		file := &entity.StagedFile{
			Id:          uuid.New(),
			Name:        header.Filename,
			MimeType:    header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     "",
			IsSupported: false,
			Status:      entity.StagedFileStatusProcessing,
			CreatedAt:   time.Now(),
		}
		s.fileRepo.Add(file)

		data, err := readUpload(header)
		if err != nil {
			// Unreadable upload: the record stays, flagged as error, and
			// never contributes to a request.
			log.Printf("[WARN] Failed to read upload '%s': %v", header.Filename, err)
			failed := *file
			failed.Status = entity.StagedFileStatusError
			s.fileRepo.Update(&failed)
			if s.notifier != nil {
				s.notifier.Broadcast(dto.StagedFileNotification{File: mapper.StagedFileToResponse(&failed)})
			}
			staged = append(staged, mapper.StagedFileToResponse(&failed))
			continue
		}

		msgPayload := dto.PublishExtractFileMessage{
			FileId:   file.Id,
			Name:     file.Name,
			MimeType: file.MimeType,
			Data:     data,
		}
		msgJson, err := json.Marshal(msgPayload)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}

		log.Printf("[INFO] Staged file '%s' (%d bytes, %s)", file.Name, file.Size, file.MimeType)
		staged = append(staged, mapper.StagedFileToResponse(file))
	}

	return staged, nil
}

func (s *fileService) List(ctx context.Context) []*dto.StagedFileResponse {
	return mapper.StagedFilesToResponse(s.fileRepo.List())
}

// Remove deletes the entry with that id; no-op if absent, no cascading
// effects.
func (s *fileService) Remove(ctx context.Context, id uuid.UUID) {
	s.fileRepo.Delete(id)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
