package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const TableDatasets = "datasets"

var datasetColumns = []string{
	"id",
	"file",
	"uploaded_at",
	"summary",
}

type datasetRow struct {
	ID         int64     `db:"id"`
	File       string    `db:"file"`
	UploadedAt time.Time `db:"uploaded_at"`
	Summary    []byte    `db:"summary"`
}

func (r *datasetRow) toDomain() (*domain.Dataset, error) {
	dataset := &domain.Dataset{
		ID:         r.ID,
		File:       r.File,
		UploadedAt: r.UploadedAt,
	}

	if r.Summary != nil {
		dataset.Summary = &domain.Summary{}
		if err := json.Unmarshal(r.Summary, dataset.Summary); err != nil {
			return nil, fmt.Errorf("failed to decode summary of dataset %d: %w", r.ID, err)
		}
	}

	return dataset, nil
}

type DatasetsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDatasetsRepository(pool *pgxpool.Pool) *DatasetsRepository {
	return &DatasetsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateDataset inserts a dataset without a summary; uploaded_at is set by the database.
func (r *DatasetsRepository) CreateDataset(ctx context.Context, file string) (*domain.Dataset, error) {
	sql, args, err := r.qb.
		Insert(TableDatasets).
		Columns("file").
		Values(file).
		Suffix("RETURNING id, file, uploaded_at, summary").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.queryOne(ctx, sql, args)
}

func (r *DatasetsRepository) AttachSummary(ctx context.Context, id int64, summary *domain.Summary) error {
	db := extractDB(ctx, r.pool)

	encoded, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	sql, args, err := r.qb.
		Update(TableDatasets).
		Set("summary", string(encoded)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDatasetNotFound
	}

	return nil
}

func (r *DatasetsRepository) DatasetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	sql, args, err := r.qb.
		Select(datasetColumns...).
		From(TableDatasets).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.queryOne(ctx, sql, args)
}

func (r *DatasetsRepository) LatestDataset(ctx context.Context) (*domain.Dataset, error) {
	sql, args, err := r.qb.
		Select(datasetColumns...).
		From(TableDatasets).
		OrderBy("uploaded_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.queryOne(ctx, sql, args)
}

// Datasets returns datasets newest first together with their total count.
// A zero limit returns every dataset from offset on.
func (r *DatasetsRepository) Datasets(ctx context.Context, limit, offset uint64) ([]*domain.Dataset, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableDatasets).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	query := r.qb.
		Select(datasetColumns...).
		From(TableDatasets).
		OrderBy("uploaded_at DESC", "id DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[datasetRow])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	datasets := make([]*domain.Dataset, 0, len(collected))
	for _, row := range collected {
		dataset, err := row.toDomain()
		if err != nil {
			return nil, -1, err
		}
		datasets = append(datasets, dataset)
	}

	return datasets, total, nil
}

// DeleteDataset removes the dataset and returns it, so the caller can clean up its file.
func (r *DatasetsRepository) DeleteDataset(ctx context.Context, id int64) (*domain.Dataset, error) {
	sql, args, err := r.qb.
		Delete(TableDatasets).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, file, uploaded_at, summary").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.queryOne(ctx, sql, args)
}

func (r *DatasetsRepository) queryOne(ctx context.Context, sql string, args []any) (*domain.Dataset, error) {
	db := extractDB(ctx, r.pool)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[datasetRow])
	if err != nil {
		return nil, collectRowError(err)
	}

	return row.toDomain()
}
