package models

import (
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Float32 && field.Kind() != reflect.Float64 {
				return false
			}
			f := field.Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a record against its declared constraints before it is
// written.
func Validate(record any) error {
	return validatorInstance().Struct(record)
}
