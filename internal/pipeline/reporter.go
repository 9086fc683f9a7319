package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	datasets        DatasetProvider
	reader          *Reader
	reportGenerator ReportGenerator
	now             func() time.Time
}

func NewReporter(
	log *slog.Logger,
	datasets DatasetProvider,
	reader *Reader,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		datasets:        datasets,
		reader:          reader,
		reportGenerator: reportGenerator,
		now:             time.Now,
	}
}

// Report renders the PDF report of the most recent dataset.
func (r *Reporter) Report(ctx context.Context) (*domain.ReportFile, error) {
	dataset, err := r.datasets.LatestDataset(ctx)
	if err != nil {
		return nil, err
	}

	log := r.log.With(slog.Int64("dataset_id", dataset.ID))

	if dataset.Summary == nil {
		return nil, domain.ErrSummaryMissing
	}

	table, err := r.reader.Table(dataset)
	if err != nil {
		log.ErrorContext(ctx, "failed to read dataset file", slog.String("err", err.Error()))
		return nil, err
	}

	generatedAt := r.now()

	log.InfoContext(ctx, "generating report", slog.Int("rows_count", table.Len()))

	content, err := r.reportGenerator.GenerateReport(BuildReport(table, dataset.Summary, generatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return &domain.ReportFile{
		Name:    ReportFilename(generatedAt),
		Content: content,
	}, nil
}
