package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/client"
	"github.com/kurochkinivan/equipment_reporter/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const (
	formatTable = "table"
	formatCSV   = "csv"
)

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "equipment_client",
		Usage:   "Equipment analytics API client",
		Version: version,
		Flags:   flags(),
		Commands: []*cli.Command{
			{
				Name:   "dashboard",
				Usage:  "Show the summary of the latest dataset and the upload history",
				Action: withClient(dashboardAction),
			},
			{
				Name:  "history",
				Usage: "List uploaded datasets, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "format",
						Aliases:   []string{"f"},
						Usage:     "Output format (table, csv)",
						Value:     formatTable,
						Validator: validateFormat,
					},
				},
				Action: withClient(historyAction),
			},
			{
				Name:      "upload",
				Usage:     "Upload a CSV file as a new dataset",
				ArgsUsage: "FILE",
				Action:    withClient(uploadAction),
			},
			{
				Name:  "export",
				Usage: "Download the PDF report of the latest dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the report to `FILE` (default: the name suggested by the server)",
					},
				},
				Action: withClient(exportAction),
			},
		},
	}
}

type clientAction func(ctx context.Context, cmd *cli.Command, c *client.Client) error

func withClient(action clientAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
		if !ok {
			return errors.New("failed to get logger from context")
		}

		cfg := config.LoadClient(cmd)

		if level, ok := ctx.Value(logLevelKey{}).(*slog.LevelVar); ok {
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
		}

		c, err := client.New(log, *cfg)
		if err != nil {
			return err
		}

		return action(ctx, cmd, c)
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "api-url",
			Aliases: []string{"u"},
			Usage:   "Set base URL of the API",
			Value:   "http://127.0.0.1:8000/api",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("EQUIPMENT_API_URL"),
				yaml.YAML("client.api_url", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "Set bearer token sent with every request",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("EQUIPMENT_API_TOKEN"),
				yaml.YAML("client.token", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Set request timeout",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "warn",
			Sources: cli.NewValueSourceChain(yaml.YAML("client.log_level", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateFormat(format string) error {
	if format != formatTable && format != formatCSV {
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
