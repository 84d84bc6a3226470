package main

import (
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/extract"
	"github.com/joseph-ayodele/resume-site/internal/llm"
	"github.com/joseph-ayodele/resume-site/internal/llm/gemini"
	"github.com/joseph-ayodele/resume-site/internal/llm/openai"
)

// newGenerator picks the model provider named in the config.
func newGenerator(cfg common.LLMConfig, logger *slog.Logger) (llm.Generator, error) {
	switch cfg.Provider {
	case constants.ProviderGemini:
		return gemini.NewClient(gemini.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case constants.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			JSONMode:    true,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func newNormalizer(cfg common.LLMConfig, logger *slog.Logger) (*llm.SchemaNormalizer, error) {
	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	return llm.NewSchemaNormalizer(gen, logger)
}

func newExtractor(cfg common.ExtractConfig, logger *slog.Logger) *extract.PDFExtractor {
	return extract.NewPDFExtractor(extract.Config{
		MaxPages:  cfg.MaxPages,
		Separator: cfg.Separator,
	}, logger)
}
