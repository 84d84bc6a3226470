package llm

import (
	"context"

	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// GenerateRequest is one single-turn request to a generative text model.
type GenerateRequest struct {
	System string
	User   string
}

// Generator is the provider-facing interface: one request, one text response.
// An empty string with a nil error means the model produced no text.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Model() string
}

// NormalizeRequest carries the extracted text and the example record shown to the model.
// A zero Example means ExampleResume.
type NormalizeRequest struct {
	Text    string
	Example *entity.Resume
}

// Normalizer is what the ingestion pipeline depends on. It returns the typed record
// and the raw JSON the model produced.
type Normalizer interface {
	Normalize(ctx context.Context, req NormalizeRequest) (entity.Resume, []byte, error)
}
