package resource

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for variant specs.
// Validation rules live in struct tags on each spec type.
var validate = validator.New()

// configViolation converts the first violated validation rule into an
// INVALID_CONFIG error with a human-readable cause. Variants supply the
// describe function to phrase the violation in domain terms.
func configViolation(err error, describe func(fe validator.FieldError) string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg := describe(fe); msg != "" {
			return NewInvalidConfigError(msg)
		}
		return NewInvalidConfigError(fmt.Sprintf("field %s failed rule %q", fe.Field(), fe.Tag()))
	}
	return NewInvalidConfigError(err.Error())
}
