package dto

import "time"

type CreateSwapRequest struct {
	ProviderID   string `json:"provider_id" validate:"required"`
	SkillOffered string `json:"skill_offered" validate:"required,min=1,max=60"`
	SkillWanted  string `json:"skill_wanted" validate:"required,min=1,max=60"`
	Message      string `json:"message" validate:"omitempty,max=1000"`
}

type SetSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

type AttachFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

type SwapResponse struct {
	ID           string    `json:"id"`
	RequesterID  string    `json:"requester_id"`
	ProviderID   string    `json:"provider_id"`
	SkillOffered string    `json:"skill_offered"`
	SkillWanted  string    `json:"skill_wanted"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Requester *ParticipantInfo `json:"requester,omitempty"`
	Provider  *ParticipantInfo `json:"provider,omitempty"`
}

type ParticipantInfo struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type SwapListResponse struct {
	Sent     []*SwapResponse `json:"sent"`
	Received []*SwapResponse `json:"received"`
}
