package memory

import (
	"sort"
	"sync"

	"ai-studymate-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// StagedFileRepository keeps the session's staged files. The cache is
// unordered, so each record carries a staging sequence number and List sorts
// by it.
type StagedFileRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
	seq   int
}

func NewStagedFileRepository() *StagedFileRepository {
	return &StagedFileRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Add stores a new staged file and assigns its staging order.
func (r *StagedFileRepository) Add(file *entity.StagedFile) {
	r.mu.Lock()
	r.seq++
	file.Seq = r.seq
	r.mu.Unlock()
	r.cache.Set(file.Id.String(), file, cache.NoExpiration)
}

// Get returns the staged file with the given id.
func (r *StagedFileRepository) Get(id uuid.UUID) (*entity.StagedFile, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.StagedFile), true
	}
	return nil, false
}

// Update overwrites the record with the same id. Updating an id that was
// deleted in the meantime is a no-op, which makes extraction completions
// idempotent per id.
func (r *StagedFileRepository) Update(file *entity.StagedFile) {
	if _, found := r.cache.Get(file.Id.String()); !found {
		return
	}
	r.cache.Set(file.Id.String(), file, cache.NoExpiration)
}

// Delete removes the entry with that id; no-op if absent.
func (r *StagedFileRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}

// List returns all staged files in staging order.
func (r *StagedFileRepository) List() []*entity.StagedFile {
	items := r.cache.Items()
	files := make([]*entity.StagedFile, 0, len(items))
	for _, item := range items {
		files = append(files, item.Object.(*entity.StagedFile))
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Seq < files[j].Seq })
	return files
}

// Clear drops every staged file, used on profile reset.
func (r *StagedFileRepository) Clear() {
	r.cache.Flush()
}
