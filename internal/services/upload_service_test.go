package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedType(t *testing.T) {
	t.Parallel()

	allowed := []string{"image/jpeg", "image/png"}

	assert.True(t, allowedType("image/jpeg", allowed))
	assert.True(t, allowedType("IMAGE/PNG", allowed))
	assert.False(t, allowedType("image/svg+xml", allowed))
	assert.False(t, allowedType("", allowed))
}

func TestAvatarPath(t *testing.T) {
	t.Parallel()

	base := "/api/v1/files"

	assert.Equal(t, "avatars/u1/pic.png", avatarPath("/api/v1/files/avatars/u1/pic.png", base))
	assert.Equal(t, "", avatarPath("", base))
	assert.Equal(t, "", avatarPath("https://cdn.example.com/avatars/u1/pic.png", base))
	assert.Equal(t, "", avatarPath("/api/v1/files/avatars/u1/pic.png", ""))
}
