package repositories

import (
	"errors"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already listed with this type")
)

type SkillRepository interface {
	Create(db *gorm.DB, skill *models.Skill) error
	FindByID(db *gorm.DB, id string) (*models.Skill, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Skill, error)
	FindByUserAndType(db *gorm.DB, userID string, skillType models.SkillType) ([]models.Skill, error)
	Delete(db *gorm.DB, id string) error

	// DistinctNames returns every distinct skill name on the platform,
	// for search suggestions.
	DistinctNames(db *gorm.DB) ([]string, error)
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

func (r *SkillRepositoryImpl) Create(db *gorm.DB, skill *models.Skill) error {
	var existing models.Skill
	err := db.Where("user_id = ? AND name = ? AND type = ?", skill.UserID, skill.Name, skill.Type).
		First(&existing).Error
	if err == nil {
		return ErrSkillAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(skill).Error
}

func (r *SkillRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Skill, error) {
	var skill models.Skill
	err := db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) FindByUserAndType(db *gorm.DB, userID string, skillType models.SkillType) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Where("user_id = ? AND type = ?", userID, skillType).
		Order("created_at ASC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) DistinctNames(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&models.Skill{}).
		Distinct("name").
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}
