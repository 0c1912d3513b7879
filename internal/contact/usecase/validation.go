package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// messageID picks the catalogue entry for a failed rule. An empty required
// field reads as too short, except email which reads as invalid.
func messageID(field, tag string) string {
	switch tag {
	case "max":
		return "validation." + field + ".max"
	case "email":
		return "validation.email.invalid"
	case "required":
		if field == "email" {
			return "validation.email.invalid"
		}
	}
	return "validation." + field + ".min"
}

func validate(v *validator.Validate, in *dto.Input, loc *i18n.Localizer) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &contact.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = loc.T(messageID(field, fe.Tag()), nil)
	}
	return out
}
