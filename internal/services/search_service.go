package services

import (
	"strings"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/sahilm/fuzzy"
	"gorm.io/gorm"
)

const maxSuggestions = 10

type SearchService interface {
	// SearchProfiles filters public profiles by a case-insensitive
	// substring on name or location, and by skill membership when a
	// skill is given. Boolean filter, stable order, no ranking.
	SearchProfiles(db *gorm.DB, criteria *dto.SearchCriteria) (*dto.SearchResponse, error)

	// SuggestSkills fuzzy-matches the platform's distinct skill names
	// for typeahead. Separate from the boolean directory filter.
	SuggestSkills(db *gorm.DB, prefix string) (*dto.SuggestResponse, error)
}

type searchService struct {
	profileRepo repositories.ProfileRepository
	skillRepo   repositories.SkillRepository
	ratingRepo  repositories.RatingRepository
}

func NewSearchService(
	profileRepo repositories.ProfileRepository,
	skillRepo repositories.SkillRepository,
	ratingRepo repositories.RatingRepository,
) SearchService {
	return &searchService{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		ratingRepo:  ratingRepo,
	}
}

func (s *searchService) SearchProfiles(db *gorm.DB, criteria *dto.SearchCriteria) (*dto.SearchResponse, error) {
	profiles, err := s.profileRepo.FindPublic(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filtered := FilterProfiles(profiles, criteria.Query, criteria.Skill)

	resp := &dto.SearchResponse{
		Profiles: make([]*dto.ProfileResponse, 0, len(filtered)),
		Total:    len(filtered),
	}
	for _, p := range filtered {
		avg, count, err := s.ratingRepo.AverageForUser(db, p.UserID)
		if err != nil || count == 0 {
			resp.Profiles = append(resp.Profiles, buildProfileResponse(p, nil, 0))
			continue
		}
		rounded := roundToTenth(avg)
		resp.Profiles = append(resp.Profiles, buildProfileResponse(p, &rounded, count))
	}
	return resp, nil
}

func (s *searchService) SuggestSkills(db *gorm.DB, prefix string) (*dto.SuggestResponse, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return &dto.SuggestResponse{Suggestions: []string{}}, nil
	}

	names, err := s.skillRepo.DistinctNames(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches := fuzzy.Find(prefix, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return &dto.SuggestResponse{Suggestions: suggestions}, nil
}

// FilterProfiles applies the directory filter: query must be a substring
// of name or location (case-insensitive), and when skill is non-empty the
// profile must list it among offered or wanted skills. Relative input
// order is preserved. Pure function.
func FilterProfiles(profiles []models.Profile, query, skill string) []*models.Profile {
	query = strings.ToLower(strings.TrimSpace(query))
	skill = strings.ToLower(strings.TrimSpace(skill))

	var result []*models.Profile
	for i := range profiles {
		p := &profiles[i]

		if query != "" {
			name := strings.ToLower(p.Name)
			location := strings.ToLower(p.Location)
			if !strings.Contains(name, query) && !strings.Contains(location, query) {
				continue
			}
		}

		if skill != "" && !hasSkill(p, skill) {
			continue
		}

		result = append(result, p)
	}
	return result
}

func hasSkill(p *models.Profile, skillLower string) bool {
	for _, s := range p.Skills {
		if strings.ToLower(s.Name) == skillLower {
			return true
		}
	}
	return false
}
