package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRole(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRole(RoleUser))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.ErrorIs(t, ValidateRole("superuser"), ErrInvalidRole)
	assert.ErrorIs(t, ValidateRole(""), ErrInvalidRole)
}
