package services

import (
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileTestService(ratingRepo *fakeRatingRepo) (ProfileService, *fakeProfileRepo) {
	profileRepo := newFakeProfileRepo(
		&models.Profile{UserID: "alice", Name: "Alice", Location: "Berlin", IsPublic: true},
		&models.Profile{UserID: "bob", Name: "Bob", IsPublic: false},
	)
	if ratingRepo == nil {
		ratingRepo = &fakeRatingRepo{}
	}
	return NewProfileService(profileRepo, ratingRepo), profileRepo
}

func TestGetProfilePrivateVisibility(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileTestService(nil)

	// Owner sees their private profile.
	_, err := svc.GetProfile(nil, "bob", "bob", models.UserRoleUser)
	assert.NoError(t, err)

	// Other users do not.
	_, err = svc.GetProfile(nil, "bob", "alice", models.UserRoleUser)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Admins do.
	_, err = svc.GetProfile(nil, "bob", "alice", models.UserRoleAdmin)
	assert.NoError(t, err)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileTestService(nil)

	bio := "I teach photography."
	resp, err := svc.UpdateProfile(nil, "alice", &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "I teach photography.", resp.Bio)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "Berlin", resp.Location)
	assert.True(t, resp.IsPublic)
}

func TestProfileRatingIsDerivedAtReadTime(t *testing.T) {
	t.Parallel()

	ratingRepo := &fakeRatingRepo{}
	svc, _ := newProfileTestService(ratingRepo)

	// No ratings: aggregate is absent, not zero.
	resp, err := svc.GetMyProfile(nil, "alice")
	require.NoError(t, err)
	assert.Nil(t, resp.AverageRating)
	assert.Equal(t, int64(0), resp.RatingCount)

	ratingRepo.ratings = append(ratingRepo.ratings,
		&models.Rating{RatedID: "alice", RaterID: "bob", SwapRequestID: "s1", Score: 5},
		&models.Rating{RatedID: "alice", RaterID: "carol", SwapRequestID: "s2", Score: 4},
	)

	// The next read reflects the new rows without any stored aggregate.
	resp, err = svc.GetMyProfile(nil, "alice")
	require.NoError(t, err)
	require.NotNil(t, resp.AverageRating)
	assert.Equal(t, 4.5, *resp.AverageRating)
	assert.Equal(t, int64(2), resp.RatingCount)
}

func TestSetVisibility(t *testing.T) {
	t.Parallel()

	svc, profileRepo := newProfileTestService(nil)

	require.NoError(t, svc.SetVisibility(nil, "alice", false))

	p, err := profileRepo.FindByUserID(nil, "alice")
	require.NoError(t, err)
	assert.False(t, p.IsPublic)

	err = svc.SetVisibility(nil, "ghost", true)
	assert.Error(t, err)
}
