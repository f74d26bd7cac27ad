package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProjectTypes are the options offered by the contact form's project select.
var ProjectTypes = []string{
	"web-application",
	"mobile-app",
	"e-commerce",
	"legacy-modernization",
	"consulting",
	"other",
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		value = strings.TrimSpace(value)
		for _, known := range ProjectTypes {
			if value == known {
				return true
			}
		}
		return false
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		return ok && strings.TrimSpace(value) != ""
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
