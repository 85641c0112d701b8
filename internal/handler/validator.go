package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// report fields by their JSON names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("coinside", validateSide)
		_ = v.RegisterValidation("category", validateCategory)

		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

func validateSide(fl validator.FieldLevel) bool {
	_, ok := domain.ParseSide(fl.Field().String())
	return ok
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.Category(fl.Field().String()).Valid()
}

// FormatValidationError formats validation errors into a field → message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "coinside":
			errs[field] = "Must be heads or tails"
		case "category":
			errs[field] = "Must be classic or itemless"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
