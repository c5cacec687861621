package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

const testExtractTopic = "EXTRACT_STAGED_FILE_TEST"

// fakeNotifier records every broadcast payload.
type fakeNotifier struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (n *fakeNotifier) Broadcast(payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, payload)
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.payloads)
}

func newStagingFixture(t *testing.T, delay time.Duration) (IFileService, *memory.StagedFileRepository, *fakeNotifier) {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	fileRepo := memory.NewStagedFileRepository()
	notifier := &fakeNotifier{}

	extractor := NewExtractorService(pubSub, testExtractTopic, fileRepo, notifier, delay)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := extractor.Consume(ctx); err != nil {
		t.Fatalf("start extractor: %v", err)
	}

	publisher := NewPublisherService(testExtractTopic, pubSub)
	fileService := NewFileService(fileRepo, publisher, notifier)
	return fileService, fileRepo, notifier
}

// uploadForm builds multipart file headers the way a browser upload would.
func uploadForm(t *testing.T, files map[string]struct {
	mimeType string
	data     string
}) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", f.mimeType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write([]byte(f.data))
	}
	_ = writer.Close()

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["files"]
}

func TestStagingPipelineCompletesFile(t *testing.T) {
	fileService, fileRepo, notifier := newStagingFixture(t, 0)

	headers := uploadForm(t, map[string]struct {
		mimeType string
		data     string
	}{
		"notes.txt": {mimeType: "text/plain", data: "cell biology notes"},
	})

	staged, err := fileService.Stage(context.Background(), headers)
	assert.NoError(t, err)
	assert.Len(t, staged, 1)
	assert.Equal(t, entity.StagedFileStatusProcessing, staged[0].Status)

	id := staged[0].Id
	assert.Eventually(t, func() bool {
		file, found := fileRepo.Get(id)
		return found && file.Status == entity.StagedFileStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	file, _ := fileRepo.Get(id)
	assert.Equal(t, "cell biology notes", file.Content)
	assert.True(t, file.IsSupported)
	assert.GreaterOrEqual(t, notifier.count(), 1)
}

func TestStagingPipelineUnsupportedFile(t *testing.T) {
	fileService, fileRepo, _ := newStagingFixture(t, 0)

	headers := uploadForm(t, map[string]struct {
		mimeType string
		data     string
	}{
		"archive.zip": {mimeType: "application/zip", data: "PK"},
	})

	staged, err := fileService.Stage(context.Background(), headers)
	assert.NoError(t, err)

	id := staged[0].Id
	assert.Eventually(t, func() bool {
		file, found := fileRepo.Get(id)
		return found && file.Status == entity.StagedFileStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	file, _ := fileRepo.Get(id)
	assert.False(t, file.IsSupported)
	assert.Equal(t, "File type not supported for content extraction.", file.Content)
}

func TestStagingPipelineDeletedFileStaysGone(t *testing.T) {
	fileService, fileRepo, notifier := newStagingFixture(t, 100*time.Millisecond)

	headers := uploadForm(t, map[string]struct {
		mimeType string
		data     string
	}{
		"late.txt": {mimeType: "text/plain", data: "will be removed"},
	})

	staged, err := fileService.Stage(context.Background(), headers)
	assert.NoError(t, err)

	id := staged[0].Id
	fileService.Remove(context.Background(), id)

	// Give extraction time to finish after the delete.
	time.Sleep(300 * time.Millisecond)

	_, found := fileRepo.Get(id)
	assert.False(t, found, "completion must not resurrect a deleted file")
	assert.Zero(t, notifier.count(), "no notification for a deleted file")
}
