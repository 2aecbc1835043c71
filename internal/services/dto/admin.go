package dto

type SetUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended banned"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
}

type SwapAdminListResponse struct {
	Swaps []*SwapResponse `json:"swaps"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
}

type PlatformStats struct {
	TotalUsers     int64   `json:"total_users"`
	BannedUsers    int64   `json:"banned_users"`
	PendingSwaps   int64   `json:"pending_swaps"`
	AcceptedSwaps  int64   `json:"accepted_swaps"`
	RejectedSwaps  int64   `json:"rejected_swaps"`
	CompletedSwaps int64   `json:"completed_swaps"`
	TotalRatings   int64   `json:"total_ratings"`
	AverageRating  float64 `json:"average_rating"`
}
