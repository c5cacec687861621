package model

import "time"

// UserProfile is persisted as a single row under a well-known key, the same
// contract the browser client kept in local storage.
type UserProfile struct {
	Key       string `gorm:"primaryKey"`
	Level     string `gorm:"not null"`
	Subject   string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UserProfileKey is the well-known key of the only row ever written.
const UserProfileKey = "userProfile"
