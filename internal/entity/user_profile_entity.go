package entity

import "time"

// UserProfile is the single durable record of the application. It is only
// ever replaced wholesale (onboarding) or deleted (reset).
type UserProfile struct {
	Level     string
	Subject   string
	CreatedAt time.Time
}
