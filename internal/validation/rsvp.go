// Package validation enforces the shape of incoming RSVP submissions.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"eventrsvp/internal/domain"
)

// Validator checks RSVP submissions. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Submission validates sub and returns a *domain.ValidationError listing every
// offending field, or nil when the submission is acceptable.
func (v *Validator) Submission(sub *domain.RSVPSubmission) error {
	if sub == nil {
		return domain.NewValidationError("body", "request body is required")
	}
	err := v.validate.Struct(sub)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate submission: %w", err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// NameKey returns the case-folded form of name used for uniqueness checks.
// "Ana", "ANA" and "ana" share the same key.
func NameKey(name string) string {
	return cases.Fold().String(name)
}
