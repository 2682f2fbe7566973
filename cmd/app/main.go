package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/orion/internal"
	pkgconfig "github.com/starford/orion/pkg/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("data-file") {
		cfg.Storage.DataFile = cmd.String("data-file")
	}
	if cmd.IsSet("log-level") {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runWith returns an action that starts the given front-end. An empty
// frontend keeps the configured one.
func runWith(frontend string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if frontend != "" {
			cfg.App.Frontend = frontend
		}

		opts := []internal.Option{
			internal.WithConfig(cfg),
			internal.WithVersion(version),
		}

		if err := internal.Run(ctx, opts...); err != nil {
			return fmt.Errorf("app run error: %w", err)
		}

		return nil
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "orion",
		Usage:   "Personal task tracker with todos, deadlines and events",
		Version: version,
		Action:  runWith(""),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (YAML or TOML, optional)",
				DefaultText: "config/orion.yaml",
				Value:       "config/orion.yaml",
				Sources:     cli.EnvVars("ORION_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "data-file",
				Aliases: []string{"f"},
				Usage:   "Path to the task data file",
				Sources: cli.EnvVars("ORION_DATA_FILE"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (DEBUG, INFO, WARN, ERROR)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   internal.FrontendREPL,
				Usage:  "Line-oriented console session",
				Action: runWith(internal.FrontendREPL),
			},
			{
				Name:   internal.FrontendTUI,
				Usage:  "Full-screen terminal interface",
				Action: runWith(internal.FrontendTUI),
			},
			{
				Name:   internal.FrontendMCP,
				Usage:  "MCP tool server on stdin/stdout",
				Action: runWith(internal.FrontendMCP),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
