package dto

import "time"

type UpdateProfileRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Availability []string `json:"availability,omitempty" validate:"omitempty,max=20,dive,max=50"`
	IsPublic     *bool    `json:"is_public,omitempty"`
}

type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Availability  []string  `json:"availability,omitempty"`
	IsPublic      bool      `json:"is_public"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	CreatedAt     time.Time `json:"created_at"`

	// Derived, recomputed on every read. Nil when the user has no ratings.
	AverageRating *float64 `json:"average_rating,omitempty"`
	RatingCount   int64    `json:"rating_count"`
}
