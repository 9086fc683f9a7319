package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const mediaPrefix = "/media/"

type DatasetResponse struct {
	ID         int64           `json:"id"`
	Filename   *string         `json:"filename"`
	File       *string         `json:"file"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Summary    *domain.Summary `json:"summary"`
}

func newDatasetResponse(d *domain.Dataset) DatasetResponse {
	resp := DatasetResponse{
		ID:         d.ID,
		UploadedAt: d.UploadedAt,
		Summary:    d.Summary,
	}

	if d.File != "" {
		filename := d.Filename()
		file := mediaPrefix + d.File
		resp.Filename, resp.File = &filename, &file
	}

	return resp
}

func newDatasetResponses(datasets []*domain.Dataset) []DatasetResponse {
	resp := make([]DatasetResponse, 0, len(datasets))
	for _, d := range datasets {
		resp = append(resp, newDatasetResponse(d))
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
