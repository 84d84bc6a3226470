package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/llm"
)

// Generate implements llm.Generator using text-only chat/completions.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	log := common.LoggerFromContext(ctx, c.log)
	start := time.Now()

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
	}
	if c.cfg.JSONMode {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}, log)
	if err != nil {
		log.Error("openai.generate.http_error",
			"model", c.cfg.Model, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("openai: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		log.Error("openai.generate.decode_error",
			"error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		log.Warn("openai.generate.no_choices", "elapsed_ms", time.Since(start).Milliseconds())
		return "", nil
	}

	out := cc.Choices[0].Message.Content
	log.Info("openai.generate.ok",
		"model", c.cfg.Model,
		"finish_reason", cc.Choices[0].FinishReason,
		"text_len", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
