package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const csvExtension = ".csv"

// Importer loads every CSV file of a directory as a dataset, one file after another.
type Importer struct {
	log           *slog.Logger
	dir           string
	datasetWriter DatasetWriter
}

func NewImporter(log *slog.Logger, dir string, datasetWriter DatasetWriter) *Importer {
	return &Importer{
		log:           log,
		dir:           dir,
		datasetWriter: datasetWriter,
	}
}

// Run imports the directory and returns the number of datasets created.
// Files that fail are logged and skipped.
func (i *Importer) Run(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %q: %w", i.dir, err)
	}

	imported := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		ok, err := i.processEntry(ctx, entry)
		if err != nil {
			i.log.ErrorContext(ctx, "failed to import entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if ok {
			imported++
		}
	}

	i.log.InfoContext(ctx, "import finished",
		slog.String("dir", i.dir),
		slog.Int("imported", imported),
	)

	return imported, nil
}

func (i *Importer) processEntry(ctx context.Context, entry os.DirEntry) (bool, error) {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), csvExtension) {
		return false, nil
	}

	content, err := os.ReadFile(filepath.Join(i.dir, entry.Name()))
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	dataset, err := i.datasetWriter.Write(ctx, entry.Name(), content)
	if err != nil {
		return false, fmt.Errorf("failed to write dataset: %w", err)
	}

	i.log.DebugContext(ctx, "imported file",
		slog.String("filename", entry.Name()),
		slog.Int64("dataset_id", dataset.ID),
	)

	return true, nil
}
