package services

import (
	"strings"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SkillService interface {
	AddSkill(db *gorm.DB, userID string, req *dto.AddSkillRequest) (*dto.SkillResponse, error)
	ListSkills(db *gorm.DB, userID string) (*dto.SkillListResponse, error)

	// ListSkillsByType returns only one side of a user's skill list.
	ListSkillsByType(db *gorm.DB, userID string, skillType models.SkillType) (*dto.SkillListResponse, error)

	RemoveSkill(db *gorm.DB, userID, skillID string) error
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) AddSkill(db *gorm.DB, userID string, req *dto.AddSkillRequest) (*dto.SkillResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrInvalidOperation("skill", "Skill name must not be empty")
	}

	skillType := models.SkillType(req.Type)
	if !skillType.Valid() {
		return nil, apperrors.ErrInvalidOperation("skill", "Skill type must be 'offered' or 'wanted'")
	}

	skill := &models.Skill{
		UserID: userID,
		Name:   name,
		Type:   skillType,
	}

	if err := s.skillRepo.Create(db, skill); err != nil {
		if apperrors.Is(err, repositories.ErrSkillAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return buildSkillResponse(skill), nil
}

func (s *skillService) ListSkills(db *gorm.DB, userID string) (*dto.SkillListResponse, error) {
	skills, err := s.skillRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SkillListResponse{
		Offered: []dto.SkillResponse{},
		Wanted:  []dto.SkillResponse{},
	}
	for i := range skills {
		sr := buildSkillResponse(&skills[i])
		if skills[i].Type == models.SkillTypeOffered {
			resp.Offered = append(resp.Offered, *sr)
		} else {
			resp.Wanted = append(resp.Wanted, *sr)
		}
	}
	return resp, nil
}

func (s *skillService) ListSkillsByType(db *gorm.DB, userID string, skillType models.SkillType) (*dto.SkillListResponse, error) {
	if !skillType.Valid() {
		return nil, apperrors.ErrInvalidOperation("skill", "Skill type must be 'offered' or 'wanted'")
	}

	skills, err := s.skillRepo.FindByUserAndType(db, userID, skillType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SkillListResponse{
		Offered: []dto.SkillResponse{},
		Wanted:  []dto.SkillResponse{},
	}
	for i := range skills {
		sr := buildSkillResponse(&skills[i])
		if skillType == models.SkillTypeOffered {
			resp.Offered = append(resp.Offered, *sr)
		} else {
			resp.Wanted = append(resp.Wanted, *sr)
		}
	}
	return resp, nil
}

func (s *skillService) RemoveSkill(db *gorm.DB, userID, skillID string) error {
	skill, err := s.skillRepo.FindByID(db, skillID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if skill.UserID != userID {
		return apperrors.NewForbiddenError("Cannot remove another user's skill")
	}

	if err := s.skillRepo.Delete(db, skillID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildSkillResponse(skill *models.Skill) *dto.SkillResponse {
	return &dto.SkillResponse{
		ID:        skill.ID,
		Name:      skill.Name,
		Type:      string(skill.Type),
		CreatedAt: skill.CreatedAt,
	}
}
