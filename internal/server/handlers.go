package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/extract"
	"github.com/joseph-ayodele/resume-site/internal/render"
)

// Client-facing messages. Pipeline failures stay opaque; details go to the log.
const (
	msgNoFile       = "No file uploaded"
	msgUnsupported  = "Unsupported file type"
	msgNotFound     = "Resume not found"
	msgIngestFailed = "Failed to process resume"
	msgLoadFailed   = "Failed to load resume"
)

const mediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var pdfMagic = []byte("%PDF-")

func (s *Server) handleUpload(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := common.LoggerFromContext(ctx, s.logger)

	fh, err := c.FormFile("file")
	if err != nil {
		log.Warn("upload.missing_file", "error", err)
		s.metrics.Ingestion(constants.OutcomeBadRequest)
		return s.fail(c, common.BadRequestError(msgNoFile), msgIngestFailed)
	}

	f, err := fh.Open()
	if err != nil {
		log.Error("upload.open_failed", "filename", fh.Filename, "error", err)
		return s.fail(c, err, msgIngestFailed)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Error("upload.read_failed", "filename", fh.Filename, "error", err)
		return s.fail(c, err, msgIngestFailed)
	}
	if len(data) == 0 {
		s.metrics.Ingestion(constants.OutcomeBadRequest)
		return s.fail(c, common.BadRequestError(msgNoFile), msgIngestFailed)
	}

	mediaType, ok := detectMediaType(fh.Header.Get(fiber.HeaderContentType), data)
	if !ok {
		log.Warn("upload.unsupported_type", "filename", fh.Filename, "content_type", fh.Header.Get(fiber.HeaderContentType))
		s.metrics.Ingestion(constants.OutcomeBadRequest)
		return s.fail(c, common.BadRequestError(msgUnsupported), msgIngestFailed)
	}

	log.Info("upload.received", "filename", fh.Filename, "bytes", len(data), "media_type", mediaType)
	id, err := s.ingestor.Ingest(ctx, extract.RawDocument{
		Data:      data,
		MediaType: mediaType,
		Filename:  fh.Filename,
	})
	if err != nil {
		return s.fail(c, err, msgIngestFailed)
	}
	return c.JSON(fiber.Map{"id": id})
}

// detectMediaType accepts a declared PDF type, or sniffs the PDF signature when
// the client sent a generic or missing type.
func detectMediaType(declared string, data []byte) (string, bool) {
	if constants.MapMediaTypeToFormat(declared) == constants.PDF {
		return constants.MediaTypePDF, true
	}
	if bytes.HasPrefix(data, pdfMagic) {
		return constants.MediaTypePDF, true
	}
	return "", false
}

func (s *Server) handleGetResume(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.retrievalFailed(ctx, id, err)
		return s.fail(c, err, msgLoadFailed)
	}
	s.metrics.Retrieval(constants.OutcomeOK)
	return c.JSON(fiber.Map{"data": rec})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	bs, err := s.exporter.ExportResumeXLSX(ctx, id)
	if err != nil {
		s.retrievalFailed(ctx, id, err)
		return s.fail(c, err, msgLoadFailed)
	}
	s.metrics.Retrieval(constants.OutcomeOK)
	c.Set(fiber.HeaderContentType, mediaTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-%s.xlsx"`, id))
	return c.Send(bs)
}

func (s *Server) handleSite(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var buf bytes.Buffer
	rec, err := s.store.GetByID(ctx, id)
	switch {
	case err == nil:
		s.metrics.Retrieval(constants.OutcomeOK)
		err = s.renderer.Site(&buf, &rec)
	case errors.Is(err, common.ErrNotFound):
		s.retrievalFailed(ctx, id, err)
		c.Status(fiber.StatusNotFound)
		err = s.renderer.Site(&buf, nil)
	default:
		s.retrievalFailed(ctx, id, err)
		return c.Status(fiber.StatusInternalServerError).SendString(msgLoadFailed)
	}
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	var buf bytes.Buffer
	err := s.renderer.Upload(&buf, render.UploadForm{
		Action:     "/api/upload",
		SitePrefix: "/site/",
		LimitMB:    s.cfg.BodyLimitMB,
	})
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		common.LoggerFromContext(ctx, s.logger).Error("health.store_unavailable", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) retrievalFailed(ctx context.Context, id string, err error) {
	log := common.LoggerFromContext(ctx, s.logger)
	if errors.Is(err, common.ErrNotFound) {
		s.metrics.Retrieval(constants.OutcomeNotFound)
		log.Info("resume.not_found", "id", id)
		return
	}
	s.metrics.Retrieval(constants.OutcomePersistFailed)
	log.Error("resume.load_failed", "id", id, "error", err)
}
