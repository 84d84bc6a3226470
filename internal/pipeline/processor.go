package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
	"github.com/joseph-ayodele/resume-site/internal/extract"
	"github.com/joseph-ayodele/resume-site/internal/llm"
	"github.com/joseph-ayodele/resume-site/internal/metrics"
	"github.com/joseph-ayodele/resume-site/internal/repository"
)

// Processor coordinates text extraction, then LLM normalization, then persistence.
// Each stage starts only after the previous one succeeded, so a failed run stores nothing.
type Processor struct {
	logger     *slog.Logger
	extractor  extract.TextExtractor
	normalizer llm.Normalizer
	repo       repository.ResumeRepository
	metrics    *metrics.Metrics
	example    *entity.Resume
}

// Option customizes a Processor.
type Option func(*Processor)

// WithMetrics records stage latency and outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) { p.metrics = m }
}

// WithExample overrides the example record shown to the model.
func WithExample(example entity.Resume) Option {
	return func(p *Processor) { p.example = &example }
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	normalizer llm.Normalizer,
	repo repository.ResumeRepository,
	opts ...Option,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:     logger,
		extractor:  extractor,
		normalizer: normalizer,
		repo:       repo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ingest runs the full pipeline for one uploaded document and returns the new key.
func (p *Processor) Ingest(ctx context.Context, doc extract.RawDocument) (string, error) {
	log := common.LoggerFromContext(ctx, p.logger)
	start := time.Now()

	id, err := p.run(ctx, log, doc)
	outcome := OutcomeOf(err)
	p.metrics.Ingestion(outcome)
	if err != nil {
		log.Error("pipeline.ingest.failed",
			"filename", doc.Filename,
			"outcome", outcome,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	log.Info("pipeline.ingest.ok",
		"id", id,
		"filename", doc.Filename,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}

func (p *Processor) run(ctx context.Context, log *slog.Logger, doc extract.RawDocument) (string, error) {
	// 1) extract -> flat text
	text, err := p.extract(ctx, log, doc)
	if err != nil {
		return "", err
	}

	// 2) normalize -> typed record, validated against the schema
	rec, err := p.normalize(ctx, log, text)
	if err != nil {
		return "", err
	}

	// 3) persist -> key
	return p.persist(ctx, log, rec)
}

func (p *Processor) extract(ctx context.Context, log *slog.Logger, doc extract.RawDocument) (string, error) {
	start := time.Now()
	text, err := p.extractor.Extract(ctx, doc)
	p.metrics.ObserveStage(constants.StageExtract, time.Since(start))
	if err != nil {
		if !errors.Is(err, common.ErrExtraction) {
			err = common.ExtractionError("extract text", err)
		}
		return "", err
	}
	log.Debug("pipeline.extract.ok",
		"bytes_in", len(doc.Data),
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func (p *Processor) normalize(ctx context.Context, log *slog.Logger, text string) (entity.Resume, error) {
	start := time.Now()
	rec, raw, err := p.normalizer.Normalize(ctx, llm.NormalizeRequest{Text: text, Example: p.example})
	p.metrics.ObserveStage(constants.StageNormalize, time.Since(start))
	if err != nil {
		if !errors.Is(err, common.ErrNormalization) && !errors.Is(err, common.ErrSchemaParse) {
			err = common.NormalizationError("normalize text", err)
		}
		return entity.Resume{}, err
	}
	log.Debug("pipeline.normalize.ok",
		"raw_len", len(raw),
		"experience", len(rec.Experience),
		"skills", len(rec.Skills),
		"projects", len(rec.Projects),
		"education", len(rec.Education),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

func (p *Processor) persist(ctx context.Context, log *slog.Logger, rec entity.Resume) (string, error) {
	start := time.Now()
	id, err := p.repo.Insert(ctx, rec)
	p.metrics.ObserveStage(constants.StagePersist, time.Since(start))
	if err != nil {
		if !errors.Is(err, common.ErrPersistence) {
			err = common.PersistenceError("insert resume", err)
		}
		return "", err
	}
	log.Debug("pipeline.persist.ok", "id", id, "elapsed_ms", time.Since(start).Milliseconds())
	return id, nil
}

// OutcomeOf classifies an ingestion error for metrics and logs.
func OutcomeOf(err error) constants.Outcome {
	switch {
	case err == nil:
		return constants.OutcomeOK
	case errors.Is(err, common.ErrBadRequest):
		return constants.OutcomeBadRequest
	case errors.Is(err, common.ErrExtraction):
		return constants.OutcomeExtractFailed
	case errors.Is(err, common.ErrSchemaParse):
		return constants.OutcomeSchemaParseFailed
	case errors.Is(err, common.ErrNormalization):
		return constants.OutcomeNormalizeFailed
	case errors.Is(err, common.ErrNotFound):
		return constants.OutcomeNotFound
	default:
		return constants.OutcomePersistFailed
	}
}
