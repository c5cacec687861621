package dto

import "time"

type CompleteOnboardingRequest struct {
	Level   string `json:"level" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

type UserProfileResponse struct {
	Level     string    `json:"level"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type CompleteOnboardingResponse struct {
	Profile *UserProfileResponse      `json:"profile"`
	Welcome *ConversationTurnResponse `json:"welcome"`
}
