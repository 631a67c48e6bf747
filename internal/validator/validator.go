package validator

import (
	"reflect"
	"strings"
	"sync"

	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// NewValidator returns the shared validator, building it on first use.
// Field names in errors follow the json tags of the request.
func NewValidator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("plan_duration", func(fl validator.FieldLevel) bool {
			return types.PlanDuration(fl.Field().String()).IsKnown()
		})
		_ = v.RegisterValidation("plan_cadence", func(fl validator.FieldLevel) bool {
			return types.PlanCadence(fl.Field().String()).IsKnown()
		})
		_ = v.RegisterValidation("recurring_interval", func(fl validator.FieldLevel) bool {
			return types.RecurringInterval(fl.Field().String()).Validate() == nil
		})

		validate = v
	})
	return validate
}

func ValidateRequest(req interface{}) error {
	if err := NewValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
