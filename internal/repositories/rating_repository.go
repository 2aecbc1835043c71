package repositories

import (
	"errors"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrRatingAlreadyExists = errors.New("rating already exists for this swap")
)

type RatingRepository interface {
	Create(db *gorm.DB, rating *models.Rating) error
	FindByID(db *gorm.DB, id string) (*models.Rating, error)
	FindByRatedUser(db *gorm.DB, ratedID string) ([]models.Rating, error)
	FindBySwapAndRater(db *gorm.DB, swapID, raterID string) (*models.Rating, error)
	Delete(db *gorm.DB, id string) error

	// AverageForUser computes the arithmetic mean of a user's received
	// scores at query time. Returns (0, 0, nil) when no ratings exist;
	// the aggregate is never persisted.
	AverageForUser(db *gorm.DB, ratedID string) (avg float64, count int64, err error)

	// Admin operations
	FindAll(db *gorm.DB, limit, offset int) ([]models.Rating, error)
	CountAll(db *gorm.DB) (int64, error)
	PlatformAverage(db *gorm.DB) (float64, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) Create(db *gorm.DB, rating *models.Rating) error {
	var existing models.Rating
	err := db.Where("swap_request_id = ? AND rater_id = ?", rating.SwapRequestID, rating.RaterID).
		First(&existing).Error
	if err == nil {
		return ErrRatingAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(rating).Error
}

func (r *RatingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Preload("Rater.Profile").Preload("Rated.Profile").
		First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindByRatedUser(db *gorm.DB, ratedID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Rater.Profile").
		Where("rated_id = ?", ratedID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) FindBySwapAndRater(db *gorm.DB, swapID, raterID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("swap_request_id = ? AND rater_id = ?", swapID, raterID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func (r *RatingRepositoryImpl) AverageForUser(db *gorm.DB, ratedID string) (float64, int64, error) {
	var count int64
	if err := db.Model(&models.Rating{}).Where("rated_id = ?", ratedID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := db.Model(&models.Rating{}).
		Where("rated_id = ?", ratedID).
		Select("AVG(score)").
		Scan(&avg).Error
	return avg, count, err
}

func (r *RatingRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Rater.Profile").Preload("Rated.Profile").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}

func (r *RatingRepositoryImpl) PlatformAverage(db *gorm.DB) (float64, error) {
	var count int64
	if err := db.Model(&models.Rating{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var avg float64
	err := db.Model(&models.Rating{}).Select("AVG(score)").Scan(&avg).Error
	return avg, err
}
