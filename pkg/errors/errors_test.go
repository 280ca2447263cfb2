package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("drawer.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "drawer.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "drawer.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("drawer.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: drawer.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("initial_snap_index", "out of range", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "initial_snap_index", validationErr.Field)
	require.Contains(t, validationErr.Error(), "out of range")
}

func TestGeometryErrorCopiesPoints(t *testing.T) {
	t.Parallel()

	points := []float64{0.5, 2}
	err := NewGeometryError(0, points, "viewport height must be positive")
	points[0] = 9

	var geomErr *GeometryError
	require.ErrorAs(t, err, &geomErr)
	require.Equal(t, []float64{0.5, 2}, geomErr.Points)
	require.Contains(t, err.Error(), "viewport height must be positive")
}
