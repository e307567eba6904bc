// Package request decodes request bodies into typed DTOs and reports
// failures as client faults.
package request

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"streamdesk-backend/internal/shared/fault"
)

// ErrInvalidBody is returned when the body is not valid JSON for the target.
var ErrInvalidBody = fault.NewInvalid("invalid_body", "Invalid request body")

var registerOnce sync.Once

// useJSONNames makes validation errors report JSON field names.
func useJSONNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindJSON decodes and validates the JSON body into dst.
func BindJSON(c *gin.Context, dst any) error {
	useJSONNames()
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fault.NewInvalid("validation_error", describe(verrs[0]))
	}
	return ErrInvalidBody
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " entries"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
