package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return snaperrors.NewValidationError(field, msg, err)
	}

	return snaperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Drawer.Animation.Backdrop.CloseDelay into
// animation.backdrop.close_delay, dropping the root struct name.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
