// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"targetrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v and makes field errors
// report the json (or form) name instead of the Go field name.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("position", validatePosition)
	_ = v.RegisterValidation("achieved_status", validateAchievedStatus)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validatePosition(fl validator.FieldLevel) bool {
	return models.Position(fl.Field().String()).Valid()
}

func validateAchievedStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "achieved", "not-achieved":
		return true
	}
	return false
}

// Messages turns validation failures into one readable message per field.
// It returns nil when err is not a validation error.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "position":
		return fmt.Sprintf("%s must be AO or FO", field)
	case "achieved_status":
		return fmt.Sprintf("%s must be achieved or not-achieved", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
