package content

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate performs schema and cross-field validation on c.
func Validate(c *Content) error {
	if c == nil {
		return nexuserrors.NewValidationError("content", "content is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(c.Nav))
	for i, link := range c.Nav {
		if first, ok := seen[link.Href]; ok {
			return nexuserrors.NewValidationError(
				fmt.Sprintf("nav[%d].href", i),
				fmt.Sprintf("duplicate href %q (also nav[%d])", link.Href, first),
				nil,
			)
		}
		seen[link.Href] = i
	}

	highlighted := -1
	for i, plan := range c.Pricing {
		if !plan.Highlighted {
			continue
		}
		if highlighted >= 0 {
			return nexuserrors.NewValidationError(
				fmt.Sprintf("pricing[%d].highlighted", i),
				fmt.Sprintf("only one plan may be highlighted (already pricing[%d])", highlighted),
				nil,
			)
		}
		highlighted = i
	}

	for i, step := range c.HowItWorks {
		if step.Step != i+1 {
			return nexuserrors.NewValidationError(
				fmt.Sprintf("how_it_works[%d].step", i),
				fmt.Sprintf("expected step %d, got %d", i+1, step.Step),
				nil,
			)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return nexuserrors.NewValidationError(field, msg, err)
	}

	return nexuserrors.NewValidationError("content", err.Error(), err)
}

// fieldName turns "Content.nav[1].href" into "nav[1].href".
func fieldName(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}
