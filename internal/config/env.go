package config

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Env holds process-level runtime options read from the environment.
type Env struct {
	// LogLevel is the default zerolog level. ENV: SNAPSHEET_LOG_LEVEL
	LogLevel string `env:"SNAPSHEET_LOG_LEVEL,default=info" validate:"oneof=trace debug info warn error disabled"`
	// FrameRate drives the terminal host's animation ticks. ENV: SNAPSHEET_FPS
	FrameRate int `env:"SNAPSHEET_FPS,default=60" validate:"min=1,max=240"`
}

// DefaultEnv mirrors the struct tag defaults.
func DefaultEnv() Env {
	return Env{LogLevel: "info", FrameRate: 60}
}

// LoadEnv decodes Env from the process environment and validates it.
func LoadEnv() (Env, error) {
	var env Env
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, convertValidationError(err)
	}

	defaults := DefaultEnv()
	if env.LogLevel == "" {
		env.LogLevel = defaults.LogLevel
	}
	if env.FrameRate == 0 {
		env.FrameRate = defaults.FrameRate
	}

	if err := validatorInstance().Struct(env); err != nil {
		return Env{}, convertValidationError(err)
	}
	return env, nil
}
