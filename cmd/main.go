// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"code.gitea.io/publisher/modules/git"
	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/metrics"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"

	"github.com/urfave/cli/v2"
)

// EnvLogLevel overrides the configured log level
const EnvLogLevel = "SQSC_LOG_LEVEL"

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{setting.EnvConfigPath},
			Usage:   "Overlay the compiled-in configuration with this ini file",
		},
		&cli.StringFlag{
			Name:    "work-path",
			Aliases: []string{"w"},
			Value:   ".",
			Usage:   "Checkout to publish, artifacts are read relative to it",
		},
	}
}

// prepareSubcommandWithConfig gives a sub-command the global flags
func prepareSubcommandWithConfig(command *cli.Command, globalFlags []cli.Flag) {
	command.Flags = append(append([]cli.Flag{}, globalFlags...), command.Flags...)
}

// runContext is what every publishing command starts from
type runContext struct {
	settings *setting.Settings
	workPath string
	metrics  *metrics.Prom
}

// prepareRun loads the settings and applies the log level.
// It never touches the network.
func prepareRun(c *cli.Context) (*runContext, error) {
	var configPath, workPath string
	// from children to parent, check the global flags
	for _, curCtx := range c.Lineage() {
		if curCtx.IsSet("config") && configPath == "" {
			configPath = curCtx.String("config")
		}
		if curCtx.IsSet("work-path") && workPath == "" {
			workPath = curCtx.String("work-path")
		}
	}
	if workPath == "" {
		workPath = "."
	}

	s, err := setting.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := s.LogLevel
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = log.LevelFromString(env)
	}
	log.SetLevel(level)
	git.InitSimple(s.Git)

	if !filepath.IsAbs(s.Artifacts.Dir) {
		s.Artifacts.Dir = filepath.Join(workPath, s.Artifacts.Dir)
	}
	log.Debug("Settings: %s", s)

	return &runContext{
		settings: s,
		workPath: workPath,
		metrics:  metrics.NewProm(),
	}, nil
}

// pushMetrics sends the run counters once the run is over.
// A configuration error means nothing was attempted, so nothing is pushed either.
func (rc *runContext) pushMetrics(ctx context.Context, runErr error) {
	if errors.Is(runErr, util.ErrConfiguration) {
		log.Debug("Configuration error, metrics are not pushed")
		return
	}
	rc.metrics.Push(ctx, rc.settings.Metrics.PushURL, rc.settings.Metrics.Job)
}

// AppVersion is the version shown by --version, Extra carries the build details
type AppVersion struct {
	Version string
	Extra   string
}

// NewMainApp creates the sqsc-publish application
func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "sqsc-publish"
	app.Usage = "Publish the CLI executables"
	app.Description = `sqsc-publish publishes the built executables as assets of a GitHub release named after the checked out revision ("release", the default command), or as latest pointers in a bucket ("latest").`
	app.Version = appVer.Version + appVer.Extra

	subCmdWithConfig := []*cli.Command{
		cmdRelease(),
		cmdLatest(),
	}
	subCmdStandalone := []*cli.Command{
		cmdDocs(),
	}

	app.DefaultCommand = subCmdWithConfig[0].Name
	app.Flags = append(app.Flags, appGlobalFlags()...)
	app.Before = prepareConsoleLogger(log.INFO)
	for i := range subCmdWithConfig {
		prepareSubcommandWithConfig(subCmdWithConfig[i], appGlobalFlags())
	}
	app.Commands = append(app.Commands, subCmdWithConfig...)
	app.Commands = append(app.Commands, subCmdStandalone...)
	return app
}

// prepareConsoleLogger sends the diagnostics to the app writer, standard output by default
func prepareConsoleLogger(defaultLevel log.Level) func(*cli.Context) error {
	return func(c *cli.Context) error {
		log.SetOutput(c.App.Writer)
		log.SetLevel(defaultLevel)
		return nil
	}
}

// RunMainApp runs the app and turns any error into a diagnostic on standard output and exit code 1
func RunMainApp(app *cli.App, args ...string) error {
	ctx, cancel := installSignals()
	defer cancel()
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.Writer, "Error: %v\n", err)
	cli.OsExiter(1)
	return err
}

func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// install notify
		signalChannel := make(chan os.Signal, 1)

		signal.Notify(
			signalChannel,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		select {
		case <-signalChannel:
			log.Warn("Interrupted, aborting the run")
		case <-ctx.Done():
		}
		cancel()
		signal.Reset()
	}()

	return ctx, cancel
}
