package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"farmapi/pkg/apperr"
)

// Validator checks request payloads and reports failures as apperr errors
// keyed by the JSON field name.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct returns a MissingField error listing every absent required field,
// otherwise an InvalidField error for the first failing rule.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Invalid("invalid payload: %v", err)
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return apperr.MissingField(missing...)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "gte":
		return apperr.Invalid("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max":
		return apperr.Invalid("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return apperr.Invalid("invalid value for field: %s", fe.Field())
	}
}
