package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator with the game-specific tags
// registered
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("stat", validateStat)
		_ = v.RegisterValidation("slot", validateSlot)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field -> message map
// without exposing Go struct names
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
		case "stat":
			errs[field] = "Must be one of str, agi, vit, int, luk"
		case "slot":
			errs[field] = "Unknown equipment slot"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

func validateStat(fl validator.FieldLevel) bool {
	return domain.StatType(strings.ToLower(fl.Field().String())).IsValid()
}

// validateSlot accepts an empty slot so equip can pick one automatically
func validateSlot(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || domain.Slot(s).IsValid()
}

// jsonFieldName reports fields under their wire name
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}
