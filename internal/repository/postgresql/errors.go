package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

// collectRowError maps an empty result to domain.ErrDatasetNotFound.
func collectRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDatasetNotFound
	}
	return fmt.Errorf("failed to collect row: %w", err)
}
