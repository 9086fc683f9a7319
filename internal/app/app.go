package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/equipment_reporter/internal/config"
	v1 "github.com/kurochkinivan/equipment_reporter/internal/controller/http/v1"
	"github.com/kurochkinivan/equipment_reporter/internal/infrastructure/filestorage"
	"github.com/kurochkinivan/equipment_reporter/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/equipment_reporter/internal/pipeline"
	"github.com/kurochkinivan/equipment_reporter/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// components are shared by the serve and import commands.
type components struct {
	datasetsRepo *postgresql.DatasetsRepository
	writer       *pipeline.Writer
	reader       *pipeline.Reader
	reporter     *pipeline.Reporter
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}

func (a *App) build(pool *pgxpool.Pool) (*components, error) {
	storage, err := filestorage.New(a.cfg.App.MediaDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create file storage: %w", err)
	}

	datasetsRepo := postgresql.NewDatasetsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	parser := pipeline.NewParser(a.log)
	writer := pipeline.NewWriter(a.log, parser, storage, datasetsRepo, txManager)
	reader := pipeline.NewReader(a.log, parser, storage, datasetsRepo)
	reporter := pipeline.NewReporter(a.log, datasetsRepo, reader, report_generator.New())

	return &components{
		datasetsRepo: datasetsRepo,
		writer:       writer,
		reader:       reader,
		reporter:     reporter,
	}, nil
}

// Run serves the HTTP API until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("media_dir", a.cfg.App.MediaDirectory),
		slog.Int64("max_upload_size", a.cfg.HTTP.MaxUploadSize),
	)

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	c, err := a.build(pool)
	if err != nil {
		return err
	}

	datasetsHandler := v1.NewDatasetsHandler(a.log, c.datasetsRepo, c.writer, c.reader, a.cfg.HTTP.MaxUploadSize)
	exportHandler := v1.NewExportHandler(a.log, c.reporter)
	router := v1.NewRouter(a.log, a.cfg.App.MediaDirectory, datasetsHandler, exportHandler)
	server := v1.NewServer(a.cfg.HTTP, router)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", server.Addr()))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()

		a.log.InfoContext(shutdownCtx, "shutting down http server")

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// Import loads every CSV file of the import directory as a dataset.
func (a *App) Import(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting import",
		slog.String("dir", a.cfg.App.ImportDirectory),
		slog.String("media_dir", a.cfg.App.MediaDirectory),
	)

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	c, err := a.build(pool)
	if err != nil {
		return err
	}

	imported, err := pipeline.NewImporter(a.log, a.cfg.App.ImportDirectory, c.writer).Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to import %q: %w", a.cfg.App.ImportDirectory, err)
	}

	if imported == 0 {
		a.log.WarnContext(ctx, "no csv files imported", slog.String("dir", a.cfg.App.ImportDirectory))
	}

	return nil
}
