// Package validator wraps go-playground struct validation with the error
// shape the API handlers render. The uuid_required rule rejects uuid.Nil
// on request fields whose ids must reference a real row.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
	return v
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var out []*ErrorResponse
	for _, fieldErr := range err.(validator.ValidationErrors) {
		out = append(out, &ErrorResponse{
			FailedField: fieldErr.StructNamespace(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Param(),
		})
	}
	return out
}
