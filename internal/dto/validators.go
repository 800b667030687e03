package dto

import (
	"regexp"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bsbPattern = regexp.MustCompile(`^\d{3}-?\d{3}$`)

// RegisterValidators adds the custom binding tags used by the request DTOs:
//   - bsb: Australian BSB, "123-456" or "123456"
//   - periodicity: global invoice periodicity code
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("bsb", func(fl validator.FieldLevel) bool {
		return bsbPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("periodicity", func(fl validator.FieldLevel) bool {
		return domain.IsValidPeriodicity(fl.Field().String())
	})
}
