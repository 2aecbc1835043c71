package services

import (
	"fmt"
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSkillRepo struct {
	skills map[string]*models.Skill
	seq    int
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[string]*models.Skill)}
}

func (r *fakeSkillRepo) Create(_ *gorm.DB, skill *models.Skill) error {
	for _, s := range r.skills {
		if s.UserID == skill.UserID && s.Name == skill.Name && s.Type == skill.Type {
			return repositories.ErrSkillAlreadyExists
		}
	}
	r.seq++
	if skill.ID == "" {
		skill.ID = fmt.Sprintf("skill-%d", r.seq)
	}
	r.skills[skill.ID] = skill
	return nil
}

func (r *fakeSkillRepo) FindByID(_ *gorm.DB, id string) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) FindByUserAndType(_ *gorm.DB, userID string, skillType models.SkillType) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range r.skills {
		if s.UserID == userID && s.Type == skillType {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.skills[id]; !ok {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) DistinctNames(_ *gorm.DB) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, s := range r.skills {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names, nil
}

func TestAddSkillRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(newFakeSkillRepo())

	resp, err := svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "  Go  ", Type: "offered"})
	require.NoError(t, err)
	assert.Equal(t, "Go", resp.Name)
	assert.Equal(t, "offered", resp.Type)

	list, err := svc.ListSkills(nil, "alice")
	require.NoError(t, err)
	require.Len(t, list.Offered, 1)
	assert.Equal(t, "Go", list.Offered[0].Name)
	assert.Empty(t, list.Wanted)
}

func TestAddSkillRejectsDuplicates(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "offered"})
	require.NoError(t, err)

	_, err = svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "offered"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	// Same name under the other tag is a distinct listing.
	_, err = svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "wanted"})
	assert.NoError(t, err)
}

func TestListSkillsByType(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "offered"})
	require.NoError(t, err)
	_, err = svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Piano", Type: "wanted"})
	require.NoError(t, err)

	list, err := svc.ListSkillsByType(nil, "alice", models.SkillTypeWanted)
	require.NoError(t, err)
	assert.Empty(t, list.Offered)
	require.Len(t, list.Wanted, 1)
	assert.Equal(t, "Piano", list.Wanted[0].Name)

	_, err = svc.ListSkillsByType(nil, "alice", models.SkillType("teaching"))
	assert.Error(t, err)
}

func TestAddSkillRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "   ", Type: "offered"})
	assert.Error(t, err)

	_, err = svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "teaching"})
	assert.Error(t, err)
}

func TestRemoveSkillOwnerOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeSkillRepo()
	svc := NewSkillService(repo)

	resp, err := svc.AddSkill(nil, "alice", &dto.AddSkillRequest{Name: "Go", Type: "offered"})
	require.NoError(t, err)

	err = svc.RemoveSkill(nil, "bob", resp.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	require.NoError(t, svc.RemoveSkill(nil, "alice", resp.ID))
	_, err = repo.FindByID(nil, resp.ID)
	assert.ErrorIs(t, err, repositories.ErrSkillNotFound)
}
