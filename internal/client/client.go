package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/config"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	defaultTimeout  = 30 * time.Second
	maxErrorBody    = 64 << 10
	defaultFilename = "Equipment_Summary.pdf"
)

// Dataset is a dataset as the API returns it.
type Dataset struct {
	ID         int64           `json:"id"`
	Filename   *string         `json:"filename"`
	File       *string         `json:"file"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Summary    *domain.Summary `json:"summary"`
}

type Client struct {
	log        *slog.Logger
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

func New(log *slog.Logger, cfg config.Client) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", cfg.BaseURL, err)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		log:        log,
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// LatestDataset returns the most recent upload, or ErrNoData when there is none.
func (c *Client) LatestDataset(ctx context.Context) (*Dataset, error) {
	var dataset Dataset
	if err := c.getJSON(ctx, "datasets/latest/", &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// History returns every upload, newest first.
func (c *Client) History(ctx context.Context) ([]Dataset, error) {
	var datasets []Dataset
	if err := c.getJSON(ctx, "datasets/history/", &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// Upload sends the file at path as a new dataset.
func (c *Client) Upload(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "datasets/", pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dataset Dataset
	if err := json.NewDecoder(resp.Body).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.DebugContext(ctx, "dataset uploaded", slog.Int64("dataset_id", dataset.ID))

	return &dataset, nil
}

// DownloadReport streams the PDF report of the latest dataset into w and
// returns the file name suggested by the server.
func (c *Client) DownloadReport(ctx context.Context, w io.Writer) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "export/pdf/", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("failed to download report: %w", err)
	}

	return attachmentFilename(resp.Header.Get("Content-Disposition")), nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do sends req and turns transport failures and non-2xx answers into errors.
// On success the caller owns resp.Body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &UnreachableError{Host: c.baseURL.Host, Err: err}
	}

	c.log.DebugContext(req.Context(), "api call",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	if resp.StatusCode == http.StatusNotFound && isNoDataPath(req.URL.Path) {
		return nil, errors.Join(ErrNoData, apiErr)
	}

	return nil, apiErr
}

func isNoDataPath(p string) bool {
	return strings.HasSuffix(p, "/datasets/latest/") || strings.HasSuffix(p, "/export/pdf/")
}

// errorMessage extracts "detail" or "error" from a JSON error body, or returns the body text.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, key := range []string{"detail", "error"} {
			if msg, ok := payload[key].(string); ok {
				return msg
			}
		}
	}

	return strings.TrimSpace(string(raw))
}

func attachmentFilename(contentDisposition string) string {
	_, params, err := mime.ParseMediaType(contentDisposition)
	if err != nil || params["filename"] == "" {
		return defaultFilename
	}
	return filepath.Base(params["filename"])
}
