package repositories

import (
	"errors"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	Update(db *gorm.DB, profile *models.Profile) error
	SetVisibility(db *gorm.DB, userID string, public bool) error
	SetAvatarURL(db *gorm.DB, userID, url string) error

	// FindPublic returns all public profiles with skills preloaded,
	// oldest first. The directory filter runs on top of this list.
	FindPublic(db *gorm.DB) ([]models.Profile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("Skills").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	result := db.Model(profile).Updates(map[string]interface{}{
		"name":         profile.Name,
		"location":     profile.Location,
		"bio":          profile.Bio,
		"availability": profile.Availability,
		"is_public":    profile.IsPublic,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetVisibility(db *gorm.DB, userID string, public bool) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("is_public", public)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetAvatarURL(db *gorm.DB, userID, url string) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("avatar_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindPublic(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Preload("Skills").
		Where("is_public = ?", true).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}
