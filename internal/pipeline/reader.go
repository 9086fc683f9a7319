package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

// Reader re-parses stored dataset files on demand. Rows are never cached.
type Reader struct {
	log      *slog.Logger
	parser   *Parser
	storage  FileStorage
	datasets DatasetProvider
}

func NewReader(log *slog.Logger, parser *Parser, storage FileStorage, datasets DatasetProvider) *Reader {
	return &Reader{
		log:      log,
		parser:   parser,
		storage:  storage,
		datasets: datasets,
	}
}

// Records returns the rows of a dataset keyed by the headers found in its file.
func (r *Reader) Records(ctx context.Context, id int64) ([]domain.Record, error) {
	dataset, err := r.datasets.DatasetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	table, err := r.table(dataset, r.parser.ParseRaw)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to read dataset records",
			slog.Int64("dataset_id", id),
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	return table.Records(), nil
}

// Table returns the rows of a dataset with normalized column names.
func (r *Reader) Table(dataset *domain.Dataset) (*domain.Table, error) {
	return r.table(dataset, r.parser.Parse)
}

func (r *Reader) table(dataset *domain.Dataset, parse func(io.Reader) (*domain.Table, error)) (_ *domain.Table, err error) {
	if dataset.File == "" {
		return nil, domain.ErrFileNotFound
	}

	f, err := r.storage.Open(dataset.File)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil, err
		}
		return nil, &domain.FileReadError{Err: err}
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	table, err := parse(f)
	if err != nil {
		return nil, &domain.FileReadError{Err: fmt.Errorf("%s: %w", dataset.Filename(), err)}
	}

	return table, nil
}
