package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/app"
	"github.com/kurochkinivan/equipment_reporter/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "equipment_reporter",
		Usage:   "Equipment CSV analytics service",
		Version: version,
		Commands: []*cli.Command{
			serveCmd(),
			importCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the datasets HTTP API",
		Flags: append(append(appFlags(&configPath), postgresFlags(&configPath)...), httpFlags(&configPath)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := setupLogger(ctx, cmd)
			if err != nil {
				return err
			}

			return app.New(log, config.Load(cmd)).Run(ctx)
		},
	}
}

func importCmd() *cli.Command {
	var configPath string

	flags := append(appFlags(&configPath), postgresFlags(&configPath)...)
	flags = append(flags, &cli.StringFlag{
		Name:      "dir",
		Aliases:   []string{"d"},
		Usage:     "Import every CSV file of `DIR`",
		Sources:   cli.NewValueSourceChain(yaml.YAML("app.import_dir", altsrc.NewStringPtrSourcer(&configPath))),
		Required:  true,
		Validator: validateDirectory,
	})

	return &cli.Command{
		Name:  "import",
		Usage: "Import a directory of CSV files as datasets",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := setupLogger(ctx, cmd)
			if err != nil {
				return err
			}

			return app.New(log, config.Load(cmd)).Import(ctx)
		},
	}
}

func setupLogger(ctx context.Context, cmd *cli.Command) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	if level, ok := ctx.Value(logLevelKey{}).(*slog.LevelVar); ok {
		if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	return log, nil
}

func appFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: config,
		},
		&cli.StringFlag{
			Name:     "media-dir",
			Aliases:  []string{"m"},
			Usage:    "Set directory to store uploaded files in",
			Value:    "media",
			Sources:  cli.NewValueSourceChain(yaml.YAML("app.media_dir", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:      "log-level",
			Usage:     "Set log level (debug, info, warn, error)",
			Value:     "info",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.log_level", altsrc.NewStringPtrSourcer(config))),
			Validator: validateLogLevel,
		},
	}
}

func postgresFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "equipment_reporter",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(config))),
			Validator: func(n int) error {
				if n < 1 {
					return fmt.Errorf("pool size must be positive, got %d", n)
				}
				return nil
			},
		},
	}
}

func httpFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8000",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.DurationFlag{
			Name:    "http-shutdown-timeout",
			Usage:   "Set HTTP server graceful shutdown timeout",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.shutdown_timeout", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload-size",
			Usage:   "Set maximum size of an uploaded file in bytes",
			Value:   10 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.max_upload_size", altsrc.NewStringPtrSourcer(config))),
			Validator: func(n int64) error {
				if n < 1 {
					return fmt.Errorf("max upload size must be positive, got %d", n)
				}
				return nil
			},
		},
	}
}

func validateLogLevel(level string) error {
	var l slog.Level
	return l.UnmarshalText([]byte(level))
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
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
