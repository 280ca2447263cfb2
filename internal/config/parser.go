package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a drawer configuration from disk, merges defaults, validates it,
// and returns the resulting document.
func ParseConfig(path string) (*Drawer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes is ParseConfig for an in-memory document. name is only used in errors.
func ParseBytes(name string, data []byte) (*Drawer, error) {
	var cfg Drawer
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, snaperrors.NewParseError(name, ErrorLine(err), err)
	}

	merged, err := cfg.WithDefaults()
	if err != nil {
		return nil, snaperrors.NewParseError(name, 0, err)
	}

	if err := Validate(&merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// LoadOrDefault parses path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Drawer, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}

// ErrorLine extracts the line number yaml.v3 reports in err, or 0.
func ErrorLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
