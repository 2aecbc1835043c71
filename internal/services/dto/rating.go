package dto

import "time"

type CreateRatingRequest struct {
	SwapRequestID string `json:"swap_request_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
}

type RatingResponse struct {
	ID            string    `json:"id"`
	RaterID       string    `json:"rater_id"`
	RatedID       string    `json:"rated_id"`
	SwapRequestID string    `json:"swap_request_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	Rater *ParticipantInfo `json:"rater,omitempty"`
	Rated *ParticipantInfo `json:"rated,omitempty"`
}

type UserRatingResponse struct {
	UserID        string   `json:"user_id"`
	AverageRating *float64 `json:"average_rating"` // nil means "no ratings yet"
	TotalRatings  int64    `json:"total_ratings"`
}

type RatingListResponse struct {
	Ratings []*RatingResponse `json:"ratings"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
}
