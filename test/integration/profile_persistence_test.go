package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/model"
	"ai-studymate-be/internal/repository/implementation"
	"ai-studymate-be/pkg/database"

	"github.com/stretchr/testify/assert"
)

func TestUserProfilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studymate_test.db")

	gormDB, err := database.NewGormDB(path)
	if err != nil {
		t.Fatalf("Failed to open SQLite DB: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.UserProfile{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	repo := implementation.NewUserProfileRepository(gormDB)
	ctx := context.Background()

	// Empty DB: Find reports absence, not an error.
	profile, err := repo.Find(ctx)
	assert.NoError(t, err)
	assert.Nil(t, profile)

	// Save then read back.
	err = repo.Save(ctx, &entity.UserProfile{
		Level:     "Graduate",
		Subject:   "Physics",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	profile, err = repo.Find(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Graduate", profile.Level)
	assert.Equal(t, "Physics", profile.Subject)

	// A second save replaces the single record.
	err = repo.Save(ctx, &entity.UserProfile{
		Level:     "Professional Development",
		Subject:   "Art History",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	profile, err = repo.Find(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Professional Development", profile.Level)
	assert.Equal(t, "Art History", profile.Subject)

	// Delete empties the table; deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx))
	profile, err = repo.Find(ctx)
	assert.NoError(t, err)
	assert.Nil(t, profile)
	assert.NoError(t, repo.Delete(ctx))
}
