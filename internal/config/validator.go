package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	paletteNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Names end up in variable identifiers such as --red-500.
		_ = v.RegisterValidation("palette_name", func(fl validator.FieldLevel) bool {
			return paletteNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true // presence is checked by required_without
			}
			return color.Valid(value)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a palette document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return shadeserrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if len(doc.Palettes) == 0 && len(doc.Fragments) == 0 {
		return shadeserrors.NewValidationError("palettes", "document declares no palettes or fragments", nil)
	}

	for i, p := range doc.Palettes {
		if p.Single != "" && p.Type != "" {
			return shadeserrors.NewValidationError(fieldForPalette(i, "type"),
				fmt.Sprintf("palette %q is a single value and takes no type", p.Name), nil)
		}
	}

	for i, fragment := range doc.Fragments {
		for _, name := range fragment.Names() {
			if !paletteNamePattern.MatchString(name) {
				return shadeserrors.NewValidationError(fmt.Sprintf("fragments[%d]", i),
					fmt.Sprintf("invalid palette name %q", name), nil)
			}
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
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "color" {
			msg = fmt.Sprintf("%s: %q is not a valid color", field, ve.Value())
		}
		return shadeserrors.NewValidationError(field, msg, err)
	}

	return shadeserrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns Document.Palettes[0].Primary into palettes[0].primary.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForPalette(index int, field string) string {
	return fmt.Sprintf("palettes[%d].%s", index, field)
}
