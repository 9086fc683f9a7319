package domain

import (
	"path"
	"time"
)

type Dataset struct {
	ID         int64
	File       string // storage path relative to the media root, e.g. datasets/pumps.csv
	UploadedAt time.Time
	Summary    *Summary
}

func (d *Dataset) Filename() string {
	if d.File == "" {
		return ""
	}
	return path.Base(d.File)
}
