package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/equipment_reporter/internal/config"
	"github.com/kurochkinivan/equipment_reporter/internal/repository/postgresql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp      = "up"
	migrationTypeDown    = "down"
	migrationTypeVersion = "version"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	migrationType string
	steps         int
	postgres      config.PostgreSQL
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode, err := Run(ctx, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

func Run(ctx context.Context, log *slog.Logger) (exitCode int, err error) {
	f := parseFlags()

	if err := f.validate(); err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(f.postgres))
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrator: %w", err)
	}
	migrator.Log = &migrateLogger{log: log}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			if err == nil {
				exitCode = exitCodeInternalErr
			}
			err = errors.Join(err, closeErr)
		}
	}()

	go func() {
		<-ctx.Done()
		migrator.GracefulStop <- true
	}()

	if f.migrationType == migrationTypeVersion {
		version, dirty, err := migrator.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return exitCodeInternalErr, fmt.Errorf("failed to read version: %w", err)
		}

		log.InfoContext(ctx, "current schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return exitCodeOK, nil
	}

	if err := applyMigration(migrator, f.migrationType, f.steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return exitCodeOK, nil
		}

		return exitCodeInternalErr, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully",
		slog.String("type", f.migrationType),
		slog.Int("steps", f.steps),
	)

	return exitCodeOK, nil
}

// applyMigration runs all pending migrations in the given direction, or only
// steps of them when steps is positive.
func applyMigration(migrator *migrate.Migrate, migrationType string, steps int) error {
	switch {
	case steps > 0 && migrationType == migrationTypeUp:
		return migrator.Steps(steps)
	case steps > 0 && migrationType == migrationTypeDown:
		return migrator.Steps(-steps)
	case migrationType == migrationTypeUp:
		return migrator.Up()
	case migrationType == migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.migrationType, "type", migrationTypeUp, "migration type: up/down/version")
	flag.IntVar(&f.steps, "steps", 0, "number of migrations to apply, 0 applies all")
	flag.StringVar(&f.postgres.Username, "username", "", "database username")
	flag.StringVar(&f.postgres.Password, "password", "", "database password")
	flag.StringVar(&f.postgres.Host, "host", "127.0.0.1", "database host")
	flag.StringVar(&f.postgres.Port, "port", "5432", "database port")
	flag.StringVar(&f.postgres.DBName, "db", "", "database name")
	flag.StringVar(&f.postgres.SSLMode, "sslmode", "disable", "database ssl mode")
	flag.Parse()
	return f
}

func (f *flags) validate() error {
	switch f.migrationType {
	case migrationTypeUp, migrationTypeDown, migrationTypeVersion:
	default:
		return fmt.Errorf("type must be one of %q, %q or %q, got %q",
			migrationTypeUp, migrationTypeDown, migrationTypeVersion, f.migrationType)
	}

	if f.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", f.steps)
	}

	for _, req := range []struct{ name, value string }{
		{"username", f.postgres.Username},
		{"password", f.postgres.Password},
		{"db", f.postgres.DBName},
		{"port", f.postgres.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}

type migrateLogger struct {
	log *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *migrateLogger) Verbose() bool {
	return true
}
