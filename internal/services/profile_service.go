package services

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)

	// GetProfile returns another user's profile. Private profiles are
	// visible only to their owner and admins.
	GetProfile(db *gorm.DB, targetUserID, viewerID string, viewerRole models.UserRole) (*dto.ProfileResponse, error)

	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	SetVisibility(db *gorm.DB, userID string, public bool) error
	SetAvatarURL(db *gorm.DB, userID, url string) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	ratingRepo  repositories.RatingRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	ratingRepo repositories.RatingRepository,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		ratingRepo:  ratingRepo,
	}
}

func (s *profileService) GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return s.withRating(db, profile), nil
}

func (s *profileService) GetProfile(db *gorm.DB, targetUserID, viewerID string, viewerRole models.UserRole) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, targetUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if !profile.IsPublic && profile.UserID != viewerID && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("This profile is private")
	}

	return s.withRating(db, profile), nil
}

func (s *profileService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Availability != nil {
		profile.SetAvailability(req.Availability)
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.withRating(db, profile), nil
}

func (s *profileService) SetVisibility(db *gorm.DB, userID string, public bool) error {
	if err := s.profileRepo.SetVisibility(db, userID, public); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) SetAvatarURL(db *gorm.DB, userID, url string) error {
	if err := s.profileRepo.SetAvatarURL(db, userID, url); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) withRating(db *gorm.DB, profile *models.Profile) *dto.ProfileResponse {
	avg, count, err := s.ratingRepo.AverageForUser(db, profile.UserID)
	if err != nil {
		// The profile is still useful without the derived rating.
		return buildProfileResponse(profile, nil, 0)
	}
	if count == 0 {
		return buildProfileResponse(profile, nil, 0)
	}
	rounded := roundToTenth(avg)
	return buildProfileResponse(profile, &rounded, count)
}

func buildProfileResponse(profile *models.Profile, avgRating *float64, ratingCount int64) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Name:          profile.Name,
		Location:      profile.Location,
		Bio:           profile.Bio,
		AvatarURL:     profile.AvatarURL,
		Availability:  profile.GetAvailability(),
		IsPublic:      profile.IsPublic,
		SkillsOffered: profile.OfferedSkills(),
		SkillsWanted:  profile.WantedSkills(),
		CreatedAt:     profile.CreatedAt,
		AverageRating: avgRating,
		RatingCount:   ratingCount,
	}
}
