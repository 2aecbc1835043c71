package services

import (
	"math"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RatingService interface {
	// CreateRating records a rating for the counterparty of a swap.
	// Allowed once per rater per swap, only for participants, only after
	// the swap was accepted or completed.
	CreateRating(db *gorm.DB, raterID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)

	// GetUserRating recomputes the user's average from the rating rows
	// visible at query time. AverageRating is nil when no ratings exist.
	GetUserRating(db *gorm.DB, userID string) (*dto.UserRatingResponse, error)

	ListUserRatings(db *gorm.DB, userID string) ([]*dto.RatingResponse, error)

	// DeleteRating is an admin operation.
	DeleteRating(db *gorm.DB, ratingID string) error
}

type ratingService struct {
	ratingRepo repositories.RatingRepository
	swapRepo   repositories.SwapRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	swapRepo repositories.SwapRepository,
) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
	}
}

func (s *ratingService) CreateRating(db *gorm.DB, raterID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	swap, err := s.swapRepo.FindByID(db, req.SwapRequestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSwapNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !swap.Involves(raterID) {
		return nil, apperrors.NewForbiddenError("Not a participant of this swap")
	}

	if swap.Status != models.SwapStatusAccepted && swap.Status != models.SwapStatusCompleted {
		return nil, apperrors.ErrInvalidStatus("rating", "Ratings are only allowed after a swap was accepted")
	}

	rating := &models.Rating{
		RaterID:       raterID,
		RatedID:       swap.Counterparty(raterID),
		SwapRequestID: swap.ID,
		Score:         req.Rating,
		Comment:       req.Comment,
	}

	if err := s.ratingRepo.Create(db, rating); err != nil {
		if apperrors.Is(err, repositories.ErrRatingAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "rating", "You already rated this swap")
		}
		return nil, apperrors.InternalError(err)
	}

	return buildRatingResponse(rating), nil
}

func (s *ratingService) GetUserRating(db *gorm.DB, userID string) (*dto.UserRatingResponse, error) {
	avg, count, err := s.ratingRepo.AverageForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserRatingResponse{
		UserID:       userID,
		TotalRatings: count,
	}
	if count > 0 {
		rounded := roundToTenth(avg)
		resp.AverageRating = &rounded
	}
	return resp, nil
}

func (s *ratingService) ListUserRatings(db *gorm.DB, userID string) ([]*dto.RatingResponse, error) {
	ratings, err := s.ratingRepo.FindByRatedUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, buildRatingResponse(&ratings[i]))
	}
	return resp, nil
}

func (s *ratingService) DeleteRating(db *gorm.DB, ratingID string) error {
	if err := s.ratingRepo.Delete(db, ratingID); err != nil {
		if apperrors.Is(err, repositories.ErrRatingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// RatingEntry is one {user, score} pair for aggregation.
type RatingEntry struct {
	UserID string
	Rating int
}

// AggregateRatings maps each user to the arithmetic mean of their scores,
// rounded to one decimal place. Users with no ratings are absent from the
// result. Pure function, no side effects.
func AggregateRatings(entries []RatingEntry) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		sums[e.UserID] += e.Rating
		counts[e.UserID]++
	}

	result := make(map[string]float64, len(sums))
	for userID, sum := range sums {
		result[userID] = roundToTenth(float64(sum) / float64(counts[userID]))
	}
	return result
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func buildRatingResponse(rating *models.Rating) *dto.RatingResponse {
	resp := &dto.RatingResponse{
		ID:            rating.ID,
		RaterID:       rating.RaterID,
		RatedID:       rating.RatedID,
		SwapRequestID: rating.SwapRequestID,
		Rating:        rating.Score,
		Comment:       rating.Comment,
		CreatedAt:     rating.CreatedAt,
	}
	if rating.Rater != nil && rating.Rater.Profile != nil {
		resp.Rater = participantInfo(rating.RaterID, rating.Rater.Profile)
	}
	if rating.Rated != nil && rating.Rated.Profile != nil {
		resp.Rated = participantInfo(rating.RatedID, rating.Rated.Profile)
	}
	return resp
}
