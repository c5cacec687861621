package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/repository/memory"
	"ai-studymate-be/pkg/extract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StagingNotifier pushes staged-file updates to connected clients. The
// websocket hub implements it.
type StagingNotifier interface {
	Broadcast(payload interface{})
}

type IExtractorService interface {
	Consume(ctx context.Context) error
}

// extractorService drains the extraction topic: one message per staged
// file, each carrying the raw bytes. Files are processed independently;
// completion order across files is not defined.
type extractorService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	fileRepo  *memory.StagedFileRepository
	notifier  StagingNotifier

	// Simulated extraction latency. Zero disables the pause.
	delay time.Duration
}

func NewExtractorService(
	pubSub *gochannel.GoChannel,
	topicName string,
	fileRepo *memory.StagedFileRepository,
	notifier StagingNotifier,
	delay time.Duration,
) IExtractorService {
	return &extractorService{
		pubSub:    pubSub,
		topicName: topicName,
		fileRepo:  fileRepo,
		notifier:  notifier,
		delay:     delay,
	}
}

func (s *extractorService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			// Each file extracts independently.
			go s.processMessage(msg)
		}
	}()

	return nil
}

func (s *extractorService) processMessage(msg *message.Message) {
	var payload dto.PublishExtractFileMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal extraction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	result := extract.Extract(payload.Name, payload.MimeType, payload.Data)

	file, ok := s.fileRepo.Get(payload.FileId)
	if !ok {
		// Deleted while processing; nothing to update.
		log.Printf("[INFO] Staged file %s removed before extraction finished", payload.FileId)
		msg.Ack()
		return
	}

	updated := *file
	updated.Content = result.Content
	updated.IsSupported = result.IsSupported
	updated.Status = entity.StagedFileStatusCompleted
	s.fileRepo.Update(&updated)

	log.Printf("[INFO] Extraction completed for %s (supported=%v)", updated.Name, updated.IsSupported)

	if s.notifier != nil {
		s.notifier.Broadcast(dto.StagedFileNotification{File: mapper.StagedFileToResponse(&updated)})
	}

	msg.Ack()
}
