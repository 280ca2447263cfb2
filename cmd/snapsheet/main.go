package main

import (
	"errors"
	"fmt"
	"os"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for bad input (config, scenario or geometry) and 1 otherwise.
func exitCode(err error) int {
	var (
		parseErr      *snaperrors.ParseError
		validationErr *snaperrors.ValidationError
		geometryErr   *snaperrors.GeometryError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &validationErr), errors.As(err, &geometryErr):
		return 2
	default:
		return 1
	}
}
