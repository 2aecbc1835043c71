package repositories

import (
	"errors"
	"time"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSwapNotFound = errors.New("swap request not found")

type SwapRepository interface {
	Create(db *gorm.DB, swap *models.SwapRequest) error
	FindByID(db *gorm.DB, id string) (*models.SwapRequest, error)

	// FindByParticipant returns swaps where the user is requester or
	// provider, newest first.
	FindByParticipant(db *gorm.DB, userID string) ([]models.SwapRequest, error)
	FindSentBy(db *gorm.DB, userID string) ([]models.SwapRequest, error)
	FindReceivedBy(db *gorm.DB, userID string, status models.SwapStatus) ([]models.SwapRequest, error)

	UpdateStatus(db *gorm.DB, id string, status models.SwapStatus) error
	AttachFeedback(db *gorm.DB, id, byUserID, feedback string, rating int) error
	Delete(db *gorm.DB, id string) error

	// Worker and admin queries
	FindPendingOlderThan(db *gorm.DB, cutoff time.Time) ([]models.SwapRequest, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.SwapRequest, error)
	CountByStatus(db *gorm.DB, status models.SwapStatus) (int64, error)
}

type SwapRepositoryImpl struct{}

func NewSwapRepository() SwapRepository {
	return &SwapRepositoryImpl{}
}

func (r *SwapRepositoryImpl) Create(db *gorm.DB, swap *models.SwapRequest) error {
	return db.Create(swap).Error
}

func (r *SwapRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	err := db.Preload("Requester.Profile").Preload("Provider.Profile").
		First(&swap, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}
	return &swap, nil
}

func (r *SwapRepositoryImpl) FindByParticipant(db *gorm.DB, userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := db.Preload("Requester.Profile").Preload("Provider.Profile").
		Where("requester_id = ? OR provider_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error
	return swaps, err
}

func (r *SwapRepositoryImpl) FindSentBy(db *gorm.DB, userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := db.Preload("Provider.Profile").
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&swaps).Error
	return swaps, err
}

func (r *SwapRepositoryImpl) FindReceivedBy(db *gorm.DB, userID string, status models.SwapStatus) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	query := db.Preload("Requester.Profile").Where("provider_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&swaps).Error
	return swaps, err
}

func (r *SwapRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.SwapStatus) error {
	result := db.Model(&models.SwapRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSwapNotFound
	}
	return nil
}

func (r *SwapRepositoryImpl) AttachFeedback(db *gorm.DB, id, byUserID, feedback string, rating int) error {
	result := db.Model(&models.SwapRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"feedback":        feedback,
		"feedback_rating": rating,
		"feedback_by":     byUserID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSwapNotFound
	}
	return nil
}

func (r *SwapRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.SwapRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSwapNotFound
	}
	return nil
}

func (r *SwapRepositoryImpl) FindPendingOlderThan(db *gorm.DB, cutoff time.Time) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := db.Where("status = ? AND created_at < ?", models.SwapStatusPending, cutoff).
		Find(&swaps).Error
	return swaps, err
}

func (r *SwapRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := db.Preload("Requester.Profile").Preload("Provider.Profile").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&swaps).Error
	return swaps, err
}

func (r *SwapRepositoryImpl) CountByStatus(db *gorm.DB, status models.SwapStatus) (int64, error) {
	var count int64
	err := db.Model(&models.SwapRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
