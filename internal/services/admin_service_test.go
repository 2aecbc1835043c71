package services

import (
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestService() (AdminService, *fakeUserRepo) {
	userRepo := newFakeUserRepo(
		&models.User{BaseModel: models.BaseModel{ID: "admin"}, Email: "admin@example.com", Role: models.UserRoleAdmin, Status: models.UserStatusActive},
		&models.User{BaseModel: models.BaseModel{ID: "alice"}, Email: "alice@example.com", Status: models.UserStatusActive},
	)
	swapRepo := newFakeSwapRepo()
	ratingRepo := &fakeRatingRepo{}
	ratingService := NewRatingService(ratingRepo, swapRepo)
	return NewAdminService(userRepo, swapRepo, ratingRepo, ratingService), userRepo
}

func TestSetUserStatusBansUser(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAdminTestService()

	err := svc.SetUserStatus(nil, "admin", "alice", models.UserStatusBanned)
	require.NoError(t, err)

	user, err := userRepo.FindByID(nil, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, user.Status)
}

func TestSetUserStatusRejectsSelf(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminTestService()

	err := svc.SetUserStatus(nil, "admin", "admin", models.UserStatusBanned)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestSetUserStatusRejectsOtherAdmin(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo(
		&models.User{BaseModel: models.BaseModel{ID: "admin"}, Role: models.UserRoleAdmin, Status: models.UserStatusActive},
		&models.User{BaseModel: models.BaseModel{ID: "admin2"}, Role: models.UserRoleAdmin, Status: models.UserStatusActive},
	)
	swapRepo := newFakeSwapRepo()
	ratingRepo := &fakeRatingRepo{}
	svc := NewAdminService(userRepo, swapRepo, ratingRepo, NewRatingService(ratingRepo, swapRepo))

	err := svc.SetUserStatus(nil, "admin", "admin2", models.UserStatusBanned)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	target, err := userRepo.FindByID(nil, "admin2")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, target.Status)
}

func TestSetUserStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminTestService()

	err := svc.SetUserStatus(nil, "admin", "alice", models.UserStatus("vaporized"))
	assert.Error(t, err)
}

func TestSetUserStatusUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminTestService()

	err := svc.SetUserStatus(nil, "admin", "ghost", models.UserStatusSuspended)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestListSwapsFiltersByParticipant(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	swapRepo := newFakeSwapRepo()
	ratingRepo := &fakeRatingRepo{}
	svc := NewAdminService(userRepo, swapRepo, ratingRepo, NewRatingService(ratingRepo, swapRepo))

	seedSwap(swapRepo, models.SwapStatusPending)
	seedSwap(swapRepo, models.SwapStatusAccepted)
	_ = swapRepo.Create(nil, &models.SwapRequest{
		RequesterID:  "carol",
		ProviderID:   "dave",
		SkillOffered: "Cooking",
		SkillWanted:  "Piano",
		Status:       models.SwapStatusPending,
	})

	resp, err := svc.ListSwaps(nil, 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Swaps, 2)
	for _, s := range resp.Swaps {
		assert.Equal(t, "alice", s.RequesterID)
	}
}

func TestPlatformStatsCountsSwapsByStatus(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo(
		&models.User{BaseModel: models.BaseModel{ID: "alice"}, Status: models.UserStatusActive},
	)
	swapRepo := newFakeSwapRepo()
	ratingRepo := &fakeRatingRepo{}
	svc := NewAdminService(userRepo, swapRepo, ratingRepo, NewRatingService(ratingRepo, swapRepo))

	seedSwap(swapRepo, models.SwapStatusPending)
	seedSwap(swapRepo, models.SwapStatusPending)
	seedSwap(swapRepo, models.SwapStatusAccepted)
	seedSwap(swapRepo, models.SwapStatusCompleted)

	stats, err := svc.PlatformStats(nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.PendingSwaps)
	assert.Equal(t, int64(1), stats.AcceptedSwaps)
	assert.Equal(t, int64(0), stats.RejectedSwaps)
	assert.Equal(t, int64(1), stats.CompletedSwaps)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Equal(t, 0.0, stats.AverageRating)
}
