package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/grindlemire/go-imlayout/internal/config"
	"github.com/grindlemire/go-imlayout/internal/layout"
	"github.com/grindlemire/go-imlayout/internal/logging"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	cfg      config.Config
	passes   int
	logger   *slog.Logger
	closeLog func() error
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}

	return &cli.Command{
		Name:      "imlayout",
		Usage:     "compute and inspect immediate-mode layout scenes",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "TOML or YAML config file",
				Sources: cli.EnvVars("IMLAYOUT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("IMLAYOUT_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Sources: cli.EnvVars("IMLAYOUT_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to a rotated file instead of stderr",
				Sources: cli.EnvVars("IMLAYOUT_LOG_FILE"),
			},
			&cli.IntFlag{
				Name:    "passes",
				Usage:   "frames to run per scene; the tree is re-declared before every frame after the first",
				Value:   2,
				Sources: cli.EnvVars("IMLAYOUT_PASSES"),
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			a.dumpCommand(),
			a.hashCommand(),
			a.renderCommand(),
			a.checkCommand(),
		},
	}
}

// before loads the config file, applies flag overrides and installs the
// loggers.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return ctx, err
		}
		a.cfg = cfg
	}
	if cmd.IsSet("log-level") {
		a.cfg.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		a.cfg.Logging.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		a.cfg.Logging.Sink = string(logging.SinkFile)
		a.cfg.Logging.File = cmd.String("log-file")
	}

	a.passes = cmd.Int("passes")
	if a.passes < 1 {
		return ctx, fmt.Errorf("--passes must be at least 1, got %d", a.passes)
	}

	logger, closeLog, err := logging.Init(a.cfg.Logging, logging.InitOptions{Version: version})
	if err != nil {
		return ctx, fmt.Errorf("init logging: %w", err)
	}
	a.logger = logger
	a.closeLog = closeLog
	layout.SetLogger(logger.With(slog.String("component", "layout")))
	return ctx, nil
}

func (a *app) after(ctx context.Context, cmd *cli.Command) error {
	layout.SetLogger(nil)
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}
