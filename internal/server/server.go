package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
	"github.com/joseph-ayodele/resume-site/internal/export"
	"github.com/joseph-ayodele/resume-site/internal/extract"
	"github.com/joseph-ayodele/resume-site/internal/logging"
	"github.com/joseph-ayodele/resume-site/internal/metrics"
	"github.com/joseph-ayodele/resume-site/internal/render"
)

// Ingestor runs the upload pipeline. *pipeline.Processor implements it.
type Ingestor interface {
	Ingest(ctx context.Context, doc extract.RawDocument) (string, error)
}

// ResumeStore is the read side of the record store the HTTP layer needs.
type ResumeStore interface {
	GetByID(ctx context.Context, id string) (entity.Resume, error)
	Ping(ctx context.Context) error
}

// Config holds HTTP server settings.
type Config struct {
	BodyLimitMB  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Deps are the collaborators injected at construction time.
type Deps struct {
	Ingestor Ingestor
	Store    ResumeStore
	Renderer *render.Renderer // optional; built from embedded templates when nil
	Metrics  *metrics.Metrics // optional
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Server is the fiber HTTP app serving ingestion, retrieval and the rendered site.
type Server struct {
	app      *fiber.App
	cfg      Config
	ingestor Ingestor
	store    ResumeStore
	exporter *export.Service
	renderer *render.Renderer
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if cfg.BodyLimitMB <= 0 {
		cfg.BodyLimitMB = 10
	}
	if deps.Renderer == nil {
		r, err := render.New()
		if err != nil {
			return nil, err
		}
		deps.Renderer = r
	}

	s := &Server{
		cfg:      cfg,
		ingestor: deps.Ingestor,
		store:    deps.Store,
		exporter: export.NewService(deps.Store, deps.Logger),
		renderer: deps.Renderer,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "resume-site",
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(s.requestContext)

	if deps.Registry != nil {
		prom := fiberprometheus.NewWithRegistry(deps.Registry, "resumesite", "resumesite", "http", nil)
		s.app.Use(prom.Middleware)
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/", s.handleIndex)
	s.app.Get("/healthz", s.handleHealth)

	s.app.Post("/upload", s.handleUpload)
	s.app.Get("/resume/:id", s.handleGetResume)

	api := s.app.Group("/api")
	api.Post("/upload", s.handleUpload)
	api.Get("/resume/:id", s.handleGetResume)
	api.Get("/resume/:id/export", s.handleExport)

	s.app.Get("/site/:id", s.handleSite)
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// requestContext tags each request with an id and a scoped logger.
func (s *Server) requestContext(c *fiber.Ctx) error {
	reqID := strings.Clone(c.Get(fiber.HeaderXRequestID))
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(fiber.HeaderXRequestID, reqID)

	log := logging.WithRequest(s.logger, reqID, strings.Clone(c.Method()), strings.Clone(c.Path()))
	ctx := common.WithLogger(common.WithRequestID(c.UserContext(), reqID), log)
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()
	log.Debug("http.request.done",
		"status", c.Response().StatusCode(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return err
}
