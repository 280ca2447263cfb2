package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

// Parse loads and validates a scenario file.
func Parse(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes is Parse for an in-memory document. name is only used in errors.
func ParseBytes(name string, data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, snaperrors.NewParseError(name, 0, errors.New("empty scenario"))
		}
		return nil, snaperrors.NewParseError(name, config.ErrorLine(err), err)
	}

	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario schema and the per-action required fields. An
// embedded drawer config is merged over defaults and validated too.
func Validate(sc *Scenario) error {
	if sc == nil {
		return snaperrors.NewValidationError("scenario", "scenario is nil", nil)
	}
	if err := config.ValidateStruct(sc); err != nil {
		return err
	}

	for i, step := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch step.Action {
		case ActionSnap:
			if step.Index == nil {
				return snaperrors.NewValidationError(field+".index", "snap step requires index", nil)
			}
		case ActionDrag:
			if step.Source == "" {
				return snaperrors.NewValidationError(field+".source", "drag step requires source", nil)
			}
		case ActionAdvance:
			if step.Duration <= 0 {
				return snaperrors.NewValidationError(field+".duration", "advance step requires a positive duration", nil)
			}
		}
	}

	if sc.Drawer != nil {
		merged, err := sc.Drawer.WithDefaults()
		if err != nil {
			return snaperrors.NewValidationError("drawer", err.Error(), err)
		}
		if err := config.Validate(&merged); err != nil {
			return err
		}
		sc.Drawer = &merged
	}
	return nil
}
