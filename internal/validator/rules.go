package validator

import (
	"skillswap_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) error {
	// skilltype: the direction tag on a skill entry.
	return v.RegisterValidation("skilltype", func(fl validator.FieldLevel) bool {
		return models.SkillType(fl.Field().String()).Valid()
	})
}
