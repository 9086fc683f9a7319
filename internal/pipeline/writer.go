package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

type Writer struct {
	log          *slog.Logger
	parser       *Parser
	storage      FileStorage
	datasetSaver DatasetSaver
	transactor   Transactor
}

func NewWriter(
	log *slog.Logger,
	parser *Parser,
	storage FileStorage,
	datasetSaver DatasetSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:          log,
		parser:       parser,
		storage:      storage,
		datasetSaver: datasetSaver,
		transactor:   transactor,
	}
}

// Write stores the file as a new dataset and attaches its summary. A file that
// cannot be summarized still produces a dataset, with a nil summary.
func (w *Writer) Write(ctx context.Context, name string, content []byte) (*domain.Dataset, error) {
	log := w.log.With(
		slog.String("filename", name),
		slog.Int("size", len(content)),
	)

	log.InfoContext(ctx, "received dataset file")

	dataset, err := w.saveDataset(ctx, name, content)
	if err != nil {
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	log = log.With(slog.Int64("dataset_id", dataset.ID))

	table, err := w.parser.Parse(bytes.NewReader(content))
	if err != nil {
		log.ErrorContext(ctx, "failed to process csv, dataset saved without summary", slog.String("err", err.Error()))
		return dataset, nil
	}

	summary := Aggregate(table)

	if err := w.datasetSaver.AttachSummary(ctx, dataset.ID, summary); err != nil {
		log.ErrorContext(ctx, "failed to attach summary, dataset saved without summary", slog.String("err", err.Error()))
		return dataset, nil
	}

	dataset.Summary = summary

	log.InfoContext(ctx, "dataset saved", slog.Int("total_count", summary.TotalCount))

	return dataset, nil
}

func (w *Writer) saveDataset(ctx context.Context, name string, content []byte) (dataset *domain.Dataset, err error) {
	err = w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		path, err := w.storage.Save(name, bytes.NewReader(content))
		if err != nil {
			return fmt.Errorf("failed to store file: %w", err)
		}

		dataset, err = w.datasetSaver.CreateDataset(ctx, path)
		if err != nil {
			return errors.Join(fmt.Errorf("failed to create dataset: %w", err), w.storage.Remove(path))
		}

		return nil
	})

	return dataset, err
}

// Delete removes the dataset record and then its stored file. A file that
// cannot be removed is logged, the dataset is gone either way.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	dataset, err := w.datasetSaver.DeleteDataset(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}

	if err := w.storage.Remove(dataset.File); err != nil {
		w.log.ErrorContext(ctx, "failed to remove dataset file",
			slog.Int64("dataset_id", id),
			slog.String("file", dataset.File),
			slog.String("err", err.Error()),
		)
	}

	w.log.InfoContext(ctx, "dataset deleted", slog.Int64("dataset_id", id))

	return nil
}
