package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/llm"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Generate implements llm.Generator with a single models/{model}:generateContent call.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	log := common.LoggerFromContext(ctx, c.log)
	start := time.Now()

	body := map[string]any{
		"systemInstruction": content{Parts: []part{{Text: req.System}}},
		"contents": []content{
			{Role: "user", Parts: []part{{Text: req.User}}},
		},
	}
	if c.cfg.Temperature > 0 {
		body["generationConfig"] = map[string]any{"temperature": c.cfg.Temperature}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	raw, status, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, map[string]string{
		"x-goog-api-key": c.cfg.APIKey,
	}, log)
	if err != nil {
		log.Error("gemini.generate.http_error",
			"model", c.cfg.Model, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("gemini: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		log.Error("gemini.generate.decode_error", "error", err, "raw_bytes", len(raw))
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if gr.PromptFeedback.BlockReason != "" {
		log.Warn("gemini.generate.blocked", "reason", gr.PromptFeedback.BlockReason)
	}
	if len(gr.Candidates) == 0 {
		log.Warn("gemini.generate.no_candidates", "elapsed_ms", time.Since(start).Milliseconds())
		return "", nil
	}

	var b strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	log.Info("gemini.generate.ok",
		"model", c.cfg.Model,
		"finish_reason", gr.Candidates[0].FinishReason,
		"text_len", b.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return b.String(), nil
}
