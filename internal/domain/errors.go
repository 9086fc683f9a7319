package domain

import "errors"

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrFileNotFound    = errors.New("dataset file not found")
	ErrSummaryMissing  = errors.New("dataset has no summary")
)

// FileReadError reports a stored file that exists but cannot be parsed.
type FileReadError struct {
	Err error
}

func (e *FileReadError) Error() string {
	return "could not read file: " + e.Err.Error()
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
