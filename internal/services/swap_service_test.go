package services

import (
	"fmt"
	"testing"
	"time"

	"skillswap_backend/internal/email"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory fakes. The db parameter is ignored everywhere.

type fakeSwapRepo struct {
	swaps map[string]*models.SwapRequest
	seq   int
}

func newFakeSwapRepo() *fakeSwapRepo {
	return &fakeSwapRepo{swaps: make(map[string]*models.SwapRequest)}
}

func (r *fakeSwapRepo) Create(_ *gorm.DB, swap *models.SwapRequest) error {
	r.seq++
	if swap.ID == "" {
		swap.ID = fmt.Sprintf("swap-%d", r.seq)
	}
	cp := *swap
	r.swaps[swap.ID] = &cp
	return nil
}

func (r *fakeSwapRepo) FindByID(_ *gorm.DB, id string) (*models.SwapRequest, error) {
	swap, ok := r.swaps[id]
	if !ok {
		return nil, repositories.ErrSwapNotFound
	}
	cp := *swap
	return &cp, nil
}

func (r *fakeSwapRepo) FindByParticipant(_ *gorm.DB, userID string) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, s := range r.swaps {
		if s.Involves(userID) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) FindSentBy(_ *gorm.DB, userID string) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, s := range r.swaps {
		if s.RequesterID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) FindReceivedBy(_ *gorm.DB, userID string, status models.SwapStatus) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, s := range r.swaps {
		if s.ProviderID == userID && (status == "" || s.Status == status) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) UpdateStatus(_ *gorm.DB, id string, status models.SwapStatus) error {
	swap, ok := r.swaps[id]
	if !ok {
		return repositories.ErrSwapNotFound
	}
	swap.Status = status
	return nil
}

func (r *fakeSwapRepo) AttachFeedback(_ *gorm.DB, id, byUserID, feedback string, rating int) error {
	swap, ok := r.swaps[id]
	if !ok {
		return repositories.ErrSwapNotFound
	}
	swap.Feedback = feedback
	swap.FeedbackRating = &rating
	swap.FeedbackBy = byUserID
	return nil
}

func (r *fakeSwapRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.swaps, id)
	return nil
}

func (r *fakeSwapRepo) FindPendingOlderThan(_ *gorm.DB, cutoff time.Time) ([]models.SwapRequest, error) {
	return nil, nil
}

func (r *fakeSwapRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.SwapRequest, error) {
	return nil, nil
}

func (r *fakeSwapRepo) CountByStatus(_ *gorm.DB, status models.SwapStatus) (int64, error) {
	var n int64
	for _, s := range r.swaps {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error { return nil }

func (r *fakeUserRepo) UpdateStatus(_ *gorm.DB, userID string, status models.UserStatus) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error { return nil }

func (r *fakeUserRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByStatus(_ *gorm.DB, status models.UserStatus) (int64, error) {
	return 0, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
	for _, p := range profiles {
		r.profiles[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ *gorm.DB, profile *models.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(_ *gorm.DB, id string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(_ *gorm.DB, profile *models.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) SetVisibility(_ *gorm.DB, userID string, public bool) error {
	p, ok := r.profiles[userID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.IsPublic = public
	return nil
}

func (r *fakeProfileRepo) SetAvatarURL(_ *gorm.DB, userID, url string) error {
	p, ok := r.profiles[userID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.AvatarURL = url
	return nil
}

func (r *fakeProfileRepo) FindPublic(_ *gorm.DB) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		if p.IsPublic {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeRatingRepo struct {
	ratings []*models.Rating
}

func (r *fakeRatingRepo) Create(_ *gorm.DB, rating *models.Rating) error {
	for _, existing := range r.ratings {
		if existing.SwapRequestID == rating.SwapRequestID && existing.RaterID == rating.RaterID {
			return repositories.ErrRatingAlreadyExists
		}
	}
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *fakeRatingRepo) FindByID(_ *gorm.DB, id string) (*models.Rating, error) {
	return nil, repositories.ErrRatingNotFound
}

func (r *fakeRatingRepo) FindByRatedUser(_ *gorm.DB, ratedID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, rt := range r.ratings {
		if rt.RatedID == ratedID {
			out = append(out, *rt)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) FindBySwapAndRater(_ *gorm.DB, swapID, raterID string) (*models.Rating, error) {
	for _, rt := range r.ratings {
		if rt.SwapRequestID == swapID && rt.RaterID == raterID {
			return rt, nil
		}
	}
	return nil, repositories.ErrRatingNotFound
}

func (r *fakeRatingRepo) Delete(_ *gorm.DB, id string) error { return nil }

func (r *fakeRatingRepo) AverageForUser(_ *gorm.DB, ratedID string) (float64, int64, error) {
	var sum, count int64
	for _, rt := range r.ratings {
		if rt.RatedID == ratedID {
			sum += int64(rt.Score)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *fakeRatingRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.Rating, error) {
	return nil, nil
}

func (r *fakeRatingRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.ratings)), nil
}

func (r *fakeRatingRepo) PlatformAverage(_ *gorm.DB) (float64, error) { return 0, nil }

type fakeEmailProvider struct{}

func (fakeEmailProvider) Send(msg *email.Message) error { return nil }
func (fakeEmailProvider) SendSwapRequested(to, requesterName, skillOffered, skillWanted string) error {
	return nil
}
func (fakeEmailProvider) SendSwapDecided(to, providerName, skillWanted string, accepted bool) error {
	return nil
}
func (fakeEmailProvider) Close() error { return nil }

func newSwapTestService() (SwapService, *fakeSwapRepo) {
	swapRepo := newFakeSwapRepo()
	userRepo := newFakeUserRepo(
		&models.User{BaseModel: models.BaseModel{ID: "alice"}, Email: "alice@example.com", Status: models.UserStatusActive},
		&models.User{BaseModel: models.BaseModel{ID: "bob"}, Email: "bob@example.com", Status: models.UserStatusActive},
		&models.User{BaseModel: models.BaseModel{ID: "mallory"}, Email: "mallory@example.com", Status: models.UserStatusBanned},
	)
	profileRepo := newFakeProfileRepo(
		&models.Profile{UserID: "alice", Name: "Alice", IsPublic: true},
		&models.Profile{UserID: "bob", Name: "Bob", IsPublic: true},
	)
	svc := NewSwapService(swapRepo, userRepo, profileRepo, &fakeRatingRepo{}, fakeEmailProvider{})
	return svc, swapRepo
}

func seedSwap(repo *fakeSwapRepo, status models.SwapStatus) string {
	swap := &models.SwapRequest{
		RequesterID:  "alice",
		ProviderID:   "bob",
		SkillOffered: "Photography",
		SkillWanted:  "Go",
		Status:       status,
	}
	_ = repo.Create(nil, swap)
	return swap.ID
}

func TestCreateSwapRejectsEmptySkills(t *testing.T) {
	t.Parallel()

	svc, _ := newSwapTestService()

	_, err := svc.CreateSwap(nil, "alice", &dto.CreateSwapRequest{
		ProviderID:   "bob",
		SkillOffered: "   ",
		SkillWanted:  "Go",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestCreateSwapRejectsSelfSwap(t *testing.T) {
	t.Parallel()

	svc, _ := newSwapTestService()

	_, err := svc.CreateSwap(nil, "alice", &dto.CreateSwapRequest{
		ProviderID:   "alice",
		SkillOffered: "Photography",
		SkillWanted:  "Go",
	})
	assert.Error(t, err)
}

func TestCreateSwapRejectsInactiveProvider(t *testing.T) {
	t.Parallel()

	svc, _ := newSwapTestService()

	_, err := svc.CreateSwap(nil, "alice", &dto.CreateSwapRequest{
		ProviderID:   "mallory",
		SkillOffered: "Photography",
		SkillWanted:  "Go",
	})
	assert.Error(t, err)
}

func TestCreateSwapStartsPending(t *testing.T) {
	t.Parallel()

	svc, _ := newSwapTestService()

	resp, err := svc.CreateSwap(nil, "alice", &dto.CreateSwapRequest{
		ProviderID:   "bob",
		SkillOffered: "  Photography  ",
		SkillWanted:  "Go",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.SwapStatusPending), resp.Status)
	assert.Equal(t, "Photography", resp.SkillOffered)
}

func TestSetStatusEnforcesTransitions(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()

	// pending -> completed skips acceptance.
	id := seedSwap(repo, models.SwapStatusPending)
	_, err := svc.SetStatus(nil, id, "bob", models.SwapStatusCompleted)
	require.Error(t, err)

	// pending -> accepted by the provider is fine.
	resp, err := svc.SetStatus(nil, id, "bob", models.SwapStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, string(models.SwapStatusAccepted), resp.Status)

	// accepted -> completed may come from either party.
	resp, err = svc.SetStatus(nil, id, "alice", models.SwapStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(models.SwapStatusCompleted), resp.Status)
}

func TestSetStatusCompletedIsFinal(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()
	id := seedSwap(repo, models.SwapStatusCompleted)

	for _, next := range []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusRejected,
	} {
		_, err := svc.SetStatus(nil, id, "bob", next)
		require.Error(t, err, "completed -> %s must be rejected", next)
	}

	stored, _ := repo.FindByID(nil, id)
	assert.Equal(t, models.SwapStatusCompleted, stored.Status)
}

func TestSetStatusOnlyProviderDecides(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()
	id := seedSwap(repo, models.SwapStatusPending)

	_, err := svc.SetStatus(nil, id, "alice", models.SwapStatusAccepted)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestSetStatusRejectsNonParticipant(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()
	id := seedSwap(repo, models.SwapStatusPending)

	_, err := svc.SetStatus(nil, id, "carol", models.SwapStatusAccepted)
	assert.Error(t, err)
}

func TestDeleteSwapOnlyPendingByRequester(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()

	// Provider cannot delete.
	id := seedSwap(repo, models.SwapStatusPending)
	require.Error(t, svc.DeleteSwap(nil, id, "bob"))

	// Accepted requests cannot be deleted.
	accepted := seedSwap(repo, models.SwapStatusAccepted)
	require.Error(t, svc.DeleteSwap(nil, accepted, "alice"))

	// Pending request deleted by its requester.
	require.NoError(t, svc.DeleteSwap(nil, id, "alice"))
	_, err := repo.FindByID(nil, id)
	assert.ErrorIs(t, err, repositories.ErrSwapNotFound)
}

func TestGetSwapVisibility(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()
	id := seedSwap(repo, models.SwapStatusPending)

	_, err := svc.GetSwap(nil, id, "alice", models.UserRoleUser)
	assert.NoError(t, err)

	_, err = svc.GetSwap(nil, id, "carol", models.UserRoleUser)
	assert.Error(t, err)

	// Admins see everything.
	_, err = svc.GetSwap(nil, id, "carol", models.UserRoleAdmin)
	assert.NoError(t, err)
}

func TestAttachFeedbackGuards(t *testing.T) {
	t.Parallel()

	svc, repo := newSwapTestService()

	// Pending swaps take no feedback.
	pending := seedSwap(repo, models.SwapStatusPending)
	err := svc.AttachFeedback(nil, pending, "alice", &dto.AttachFeedbackRequest{Rating: 5})
	require.Error(t, err)

	// Non-participants are rejected.
	completed := seedSwap(repo, models.SwapStatusCompleted)
	err = svc.AttachFeedback(nil, completed, "carol", &dto.AttachFeedbackRequest{Rating: 5})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
