// Package contact implements the contact-form submission flow: the shared
// validation schema, the JSON endpoint, an HTTP client and the client-side
// form state machine used by every front-end.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Submission is one contact-form message. Field names on the wire are the
// lowercase json names.
type Submission struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Field names in form order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists the submission fields in form order.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// Get returns the value of the named field.
func (s Submission) Get(field string) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	}
	return ""
}

// With returns a copy of s with the named field set. Unknown fields report
// false.
func (s Submission) With(field, value string) (Submission, bool) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldSubject:
		s.Subject = value
	case FieldMessage:
		s.Message = value
	default:
		return s, false
	}
	return s, true
}

// FieldErrors maps a json field name to its messages.
type FieldErrors map[string][]string

// First returns the first message for field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Details returns the nested error shape sent to API callers:
// {"_errors": [], "email": {"_errors": ["Invalid email address"]}}.
// Messages under FormError land in the top-level "_errors".
func (fe FieldErrors) Details() map[string]any {
	form := fe[FormError]
	if form == nil {
		form = []string{}
	}
	out := map[string]any{"_errors": form}
	for field, msgs := range fe {
		if field != FormError {
			out[field] = map[string][]string{"_errors": msgs}
		}
	}
	return out
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks s against the schema. It returns nil when s is valid.
func Validate(s Submission) FieldErrors {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return FieldErrors{FormError: {err.Error()}}
	}

	out := make(FieldErrors, len(ves))
	for _, fe := range ves {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

var labels = map[string]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldSubject: "Subject",
	FieldMessage: "Message",
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
