package auth

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidRole = errors.New("invalid role")

// ValidateRole rejects role claims that are not part of the platform's
// role set. Tokens minted before a role was removed must not pass auth.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleUser:
		return nil
	default:
		return ErrInvalidRole
	}
}
