package services

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const adminPageSize = 50

type AdminService interface {
	ListUsers(db *gorm.DB, page int) (*dto.UserListResponse, error)

	// SetUserStatus suspends, bans or reactivates an account. Admins
	// cannot change their own status or another admin's.
	SetUserStatus(db *gorm.DB, adminID, targetUserID string, status models.UserStatus) error

	// ListSwaps pages through all swaps; a non-empty userID narrows the
	// list to swaps the user participates in.
	ListSwaps(db *gorm.DB, page int, userID string) (*dto.SwapAdminListResponse, error)
	DeleteRating(db *gorm.DB, ratingID string) error
	PlatformStats(db *gorm.DB) (*dto.PlatformStats, error)
}

type adminService struct {
	userRepo      repositories.UserRepository
	swapRepo      repositories.SwapRepository
	ratingRepo    repositories.RatingRepository
	ratingService RatingService
}

func NewAdminService(
	userRepo repositories.UserRepository,
	swapRepo repositories.SwapRepository,
	ratingRepo repositories.RatingRepository,
	ratingService RatingService,
) AdminService {
	return &adminService{
		userRepo:      userRepo,
		swapRepo:      swapRepo,
		ratingRepo:    ratingRepo,
		ratingService: ratingService,
	}
}

func (s *adminService) ListUsers(db *gorm.DB, page int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}

	users, err := s.userRepo.FindAll(db, adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]*dto.UserResponse, 0, len(users)),
		Total: total,
		Page:  page,
	}
	for i := range users {
		resp.Users = append(resp.Users, buildUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *adminService) SetUserStatus(db *gorm.DB, adminID, targetUserID string, status models.UserStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidStatus("user", "Unknown user status")
	}
	if targetUserID == adminID {
		return apperrors.ErrCannotModifySelf
	}

	target, err := s.userRepo.FindByID(db, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if target.Role == models.UserRoleAdmin {
		return apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateStatus(db, targetUserID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *adminService) ListSwaps(db *gorm.DB, page int, userID string) (*dto.SwapAdminListResponse, error) {
	if page < 1 {
		page = 1
	}

	if userID != "" {
		swaps, err := s.swapRepo.FindByParticipant(db, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp := &dto.SwapAdminListResponse{
			Swaps: make([]*dto.SwapResponse, 0, len(swaps)),
			Total: int64(len(swaps)),
			Page:  1,
		}
		for i := range swaps {
			resp.Swaps = append(resp.Swaps, buildSwapResponse(&swaps[i]))
		}
		return resp, nil
	}

	swaps, err := s.swapRepo.FindAll(db, adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var total int64
	for _, st := range []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusRejected,
		models.SwapStatusCompleted,
	} {
		count, err := s.swapRepo.CountByStatus(db, st)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		total += count
	}

	resp := &dto.SwapAdminListResponse{
		Swaps: make([]*dto.SwapResponse, 0, len(swaps)),
		Total: total,
		Page:  page,
	}
	for i := range swaps {
		resp.Swaps = append(resp.Swaps, buildSwapResponse(&swaps[i]))
	}
	return resp, nil
}

func (s *adminService) DeleteRating(db *gorm.DB, ratingID string) error {
	return s.ratingService.DeleteRating(db, ratingID)
}

func (s *adminService) PlatformStats(db *gorm.DB) (*dto.PlatformStats, error) {
	stats := &dto.PlatformStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.BannedUsers, err = s.userRepo.CountByStatus(db, models.UserStatusBanned); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingSwaps, err = s.swapRepo.CountByStatus(db, models.SwapStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AcceptedSwaps, err = s.swapRepo.CountByStatus(db, models.SwapStatusAccepted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.RejectedSwaps, err = s.swapRepo.CountByStatus(db, models.SwapStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.CompletedSwaps, err = s.swapRepo.CountByStatus(db, models.SwapStatusCompleted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalRatings, err = s.ratingRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalRatings > 0 {
		avg, err := s.ratingRepo.PlatformAverage(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		stats.AverageRating = roundToTenth(avg)
	}
	return stats, nil
}
