package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// SchemaNormalizer turns extracted text into a Resume with one model call.
// The model output is parsed as-is: no retry and no repair of stray formatting.
type SchemaNormalizer struct {
	gen       Generator
	validator *SchemaValidator
	logger    *slog.Logger
}

func NewSchemaNormalizer(gen Generator, logger *slog.Logger) (*SchemaNormalizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	v, err := NewSchemaValidator(BuildResumeJSONSchema())
	if err != nil {
		return nil, err
	}
	return &SchemaNormalizer{gen: gen, validator: v, logger: logger}, nil
}

// Normalize implements Normalizer.
func (n *SchemaNormalizer) Normalize(ctx context.Context, req NormalizeRequest) (entity.Resume, []byte, error) {
	log := common.LoggerFromContext(ctx, n.logger)
	rid := uuid.New().String()
	start := time.Now()

	example := ExampleResume
	if req.Example != nil {
		example = *req.Example
	}

	log.Info("llm.normalize.start",
		"req_id", rid,
		"model", n.gen.Model(),
		"text_len", len(req.Text),
	)

	out, err := n.gen.Generate(ctx, GenerateRequest{
		System: BuildSystemPrompt(example),
		User:   BuildUserPrompt(req.Text),
	})
	if err != nil {
		log.Error("llm.normalize.generate_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Resume{}, nil, common.NormalizationError("model request failed", err)
	}
	if strings.TrimSpace(out) == "" {
		log.Error("llm.normalize.empty_response",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Resume{}, nil, common.NormalizationError("no response from AI model", nil)
	}

	raw := []byte(out)
	rec, err := n.parse(raw)
	if err != nil {
		log.Error("llm.normalize.schema_parse_failed",
			"req_id", rid, "error", err, "content", truncate(out, 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Resume{}, raw, err
	}

	log.Info("llm.normalize.ok",
		"req_id", rid,
		"name", rec.Personal.Name,
		"experience", len(rec.Experience),
		"skills", len(rec.Skills),
		"projects", len(rec.Projects),
		"education", len(rec.Education),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, raw, nil
}

// parse validates raw against the JSON schema, decodes it strictly and checks
// the typed constraints. Every failure is a SchemaParseError.
func (n *SchemaNormalizer) parse(raw []byte) (entity.Resume, error) {
	if !json.Valid(raw) {
		return entity.Resume{}, common.SchemaParseError("model output is not valid JSON", nil)
	}
	if err := n.validator.Validate(raw); err != nil {
		return entity.Resume{}, common.SchemaParseError("model output does not match the resume schema", err)
	}

	var rec entity.Resume
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return entity.Resume{}, common.SchemaParseError("decode resume", err)
	}
	if err := common.ValidateResume(rec); err != nil {
		return entity.Resume{}, common.SchemaParseError("resume failed validation", err)
	}
	rec.Normalize()
	return rec, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s…(%d more bytes)", s[:n], len(s)-n)
}
