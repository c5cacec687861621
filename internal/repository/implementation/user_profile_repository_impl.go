package implementation

import (
	"context"
	"errors"
	"time"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/model"
	"ai-studymate-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db: db,
	}
}

func (r *UserProfileRepositoryImpl) Find(ctx context.Context) (*entity.UserProfile, error) {
	var m model.UserProfile
	err := r.db.WithContext(ctx).
		Where("key = ?", model.UserProfileKey).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity.UserProfile{
		Level:     m.Level,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *UserProfileRepositoryImpl) Save(ctx context.Context, profile *entity.UserProfile) error {
	m := model.UserProfile{
		Key:       model.UserProfileKey,
		Level:     profile.Level,
		Subject:   profile.Subject,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r *UserProfileRepositoryImpl) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("key = ?", model.UserProfileKey).
		Delete(&model.UserProfile{}).Error
}
