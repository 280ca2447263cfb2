package config

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A snap point is a fraction in (0, 1] or an absolute height above 1.
		_ = v.RegisterValidation("snap_point", func(fl validator.FieldLevel) bool {
			p := fl.Field().Float()
			return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
		})

		validateInst = v
	})

	return validateInst
}

// ValidateStruct runs the shared validator over v and reports the first failure
// as a ValidationError with a yaml-style field path.
func ValidateStruct(v any) error {
	return convertValidationError(validatorInstance().Struct(v))
}

// Validate performs schema and cross-field validation on a drawer configuration.
func Validate(cfg *Drawer) error {
	if cfg == nil {
		return snaperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.InitialSnapIndex >= len(cfg.SnapPoints) {
		return snaperrors.NewValidationError("initial_snap_index",
			fmt.Sprintf("index %d out of range for %d snap points", cfg.InitialSnapIndex, len(cfg.SnapPoints)), nil)
	}

	return nil
}
