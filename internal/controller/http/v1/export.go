package v1

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

type ReportExporter interface {
	Report(ctx context.Context) (*domain.ReportFile, error)
}

type ExportHandler struct {
	log            *slog.Logger
	reportExporter ReportExporter
}

func NewExportHandler(log *slog.Logger, reportExporter ReportExporter) *ExportHandler {
	return &ExportHandler{
		log:            log,
		reportExporter: reportExporter,
	}
}

// ExportPDF sends the report of the latest dataset as an attachment.
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportExporter.Report(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(report.Content); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write report", slog.String("err", err.Error()))
	}
}

func (h *ExportHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var readErr *domain.FileReadError
	switch {
	case errors.Is(err, domain.ErrDatasetNotFound),
		errors.Is(err, domain.ErrSummaryMissing),
		errors.Is(err, domain.ErrFileNotFound):
		writeError(w, http.StatusNotFound, "No data available or incomplete dataset found")
	case errors.As(err, &readErr):
		writeError(w, http.StatusBadRequest, "Could not read file: "+readErr.Err.Error())
	default:
		h.log.ErrorContext(r.Context(), "failed to export report", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "A server error occurred.")
	}
}
