package v1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	uploadFormField      = "file"
	multipartMemoryLimit = 32 << 20
)

type DatasetsRepository interface {
	Datasets(ctx context.Context, limit, offset uint64) ([]*domain.Dataset, int, error)
	DatasetByID(ctx context.Context, id int64) (*domain.Dataset, error)
	LatestDataset(ctx context.Context) (*domain.Dataset, error)
}

type DatasetWriter interface {
	Write(ctx context.Context, name string, content []byte) (*domain.Dataset, error)
	Delete(ctx context.Context, id int64) error
}

type RecordsReader interface {
	Records(ctx context.Context, id int64) ([]domain.Record, error)
}

type DatasetsHandler struct {
	log                *slog.Logger
	datasetsRepository DatasetsRepository
	datasetWriter      DatasetWriter
	recordsReader      RecordsReader
	maxUploadSize      int64
}

func NewDatasetsHandler(
	log *slog.Logger,
	datasetsRepository DatasetsRepository,
	datasetWriter DatasetWriter,
	recordsReader RecordsReader,
	maxUploadSize int64,
) *DatasetsHandler {
	return &DatasetsHandler{
		log:                log,
		datasetsRepository: datasetsRepository,
		datasetWriter:      datasetWriter,
		recordsReader:      recordsReader,
		maxUploadSize:      maxUploadSize,
	}
}

type GetDatasetsResponse struct {
	Datasets   []DatasetResponse `json:"datasets"`
	Pagination Pagination        `json:"pagination"`
}

func (h *DatasetsHandler) GetDatasets(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	datasets, total, err := h.datasetsRepository.Datasets(r.Context(), limit, offset)
	if err != nil {
		h.internalError(w, r, "failed to list datasets", err)
		return
	}

	writeJSON(w, http.StatusOK, GetDatasetsResponse{
		Datasets:   newDatasetResponses(datasets),
		Pagination: newPagination(page, limit, total),
	})
}

func (h *DatasetsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	datasets, _, err := h.datasetsRepository.Datasets(r.Context(), 0, 0)
	if err != nil {
		h.internalError(w, r, "failed to list datasets", err)
		return
	}

	writeJSON(w, http.StatusOK, newDatasetResponses(datasets))
}

func (h *DatasetsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.datasetsRepository.LatestDataset(r.Context())
	if errors.Is(err, domain.ErrDatasetNotFound) {
		writeDetail(w, http.StatusNotFound, "No datasets found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get latest dataset", err)
		return
	}

	writeJSON(w, http.StatusOK, newDatasetResponse(dataset))
}

func (h *DatasetsHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	dataset, err := h.datasetsRepository.DatasetByID(r.Context(), id)
	if errors.Is(err, domain.ErrDatasetNotFound) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get dataset", err)
		return
	}

	writeJSON(w, http.StatusOK, newDatasetResponse(dataset))
}

// CreateDataset stores an uploaded multipart file. Aggregation failures still
// answer 201, with a null summary.
func (h *DatasetsHandler) CreateDataset(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeDetail(w, http.StatusRequestEntityTooLarge, "Uploaded file is too large.")
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) && !errors.Is(err, http.ErrMissingBoundary) {
			writeDetail(w, http.StatusBadRequest, "Multipart form parse error - "+err.Error())
			return
		}
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			uploadFormField: {"No file was submitted."},
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Could not read uploaded file.")
		return
	}

	dataset, err := h.datasetWriter.Write(r.Context(), header.Filename, content)
	if err != nil {
		h.internalError(w, r, "failed to create dataset", err)
		return
	}

	writeJSON(w, http.StatusCreated, newDatasetResponse(dataset))
}

func (h *DatasetsHandler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	err := h.datasetWriter.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrDatasetNotFound) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to delete dataset", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DatasetsHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	records, err := h.recordsReader.Records(r.Context(), id)
	if err == nil {
		writeJSON(w, http.StatusOK, records)
		return
	}

	var readErr *domain.FileReadError
	switch {
	case errors.Is(err, domain.ErrDatasetNotFound):
		writeDetail(w, http.StatusNotFound, "Dataset not found.")
	case errors.Is(err, domain.ErrFileNotFound):
		writeDetail(w, http.StatusNotFound, "Dataset file not found.")
	case errors.As(err, &readErr):
		writeDetail(w, http.StatusInternalServerError, "Error processing dataset file: "+readErr.Err.Error())
	default:
		h.internalError(w, r, "failed to read records", err)
	}
}

func (h *DatasetsHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg, slog.String("err", err.Error()))
	writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
}

func datasetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}
