package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

type DatasetSaver interface {
	CreateDataset(ctx context.Context, file string) (*domain.Dataset, error)
	AttachSummary(ctx context.Context, id int64, summary *domain.Summary) error
	DeleteDataset(ctx context.Context, id int64) (*domain.Dataset, error)
}

type DatasetProvider interface {
	DatasetByID(ctx context.Context, id int64) (*domain.Dataset, error)
	LatestDataset(ctx context.Context) (*domain.Dataset, error)
}

type FileStorage interface {
	Save(name string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(report *domain.Report) ([]byte, error)
}

type DatasetWriter interface {
	Write(ctx context.Context, name string, content []byte) (*domain.Dataset, error)
}
