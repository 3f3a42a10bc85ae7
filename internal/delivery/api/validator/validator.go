// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"
	"time"

	"bakery/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the bakery specific tags registered:
//
//	phone    customer phone number
//	duetime  "HH:MM"
//	duedate  "YYYY-MM-DD"
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.ValidPhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("duetime", layoutValidator(entity.DueTimeLayout))
	_ = v.RegisterValidation("duedate", layoutValidator(entity.DueDateLayout))

	return &CustomValidator{validate: v}
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())

		return err == nil
	}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
