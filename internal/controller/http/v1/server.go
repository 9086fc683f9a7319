package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/equipment_reporter/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// NewRouter mounts the API under /api and serves stored files from mediaDir under /media.
// Trailing slashes are optional on every route.
func NewRouter(log *slog.Logger, mediaDir string, datasets *DatasetsHandler, export *ExportHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/datasets", func(r chi.Router) {
			r.Get("/", datasets.GetDatasets)
			r.Post("/", datasets.CreateDataset)
			r.Get("/latest", datasets.GetLatest)
			r.Get("/history", datasets.GetHistory)
			r.Get("/{id}", datasets.GetDataset)
			r.Delete("/{id}", datasets.DeleteDataset)
			r.Get("/{id}/records", datasets.GetRecords)
		})
		r.Get("/export/pdf", export.ExportPDF)
	})

	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	return r
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
