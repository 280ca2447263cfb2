package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Env    config.Env
	Logger *logger.Logger
}

func (a *AppContext) init(flags *rootFlags, errOut io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return newCommandError("start", "reading environment", err, "Check SNAPSHEET_LOG_LEVEL and SNAPSHEET_FPS.")
	}

	switch flags.logFormat {
	case "console", "json":
	default:
		return newCommandError("start", "configuring logging", fmt.Errorf("unknown log format %q", flags.logFormat), "Use --log-format console or --log-format json.")
	}

	level := env.LogLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.logFormat == "console",
		Writer:        errOut,
	})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error.")
	}

	a.Env = env
	a.Logger = log
	return nil
}

// loadDrawer reads the drawer configuration named by --config, or the defaults.
func (a *AppContext) loadDrawer(path string) (*config.Drawer, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		a.Logger.Error(err, "configuration rejected")
		return nil, err
	}
	return cfg, nil
}
