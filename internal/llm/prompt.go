package llm

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// BuildSystemPrompt fixes the model's role, tone limits, inference policy and output format,
// then appends the serialized example the output must follow.
func BuildSystemPrompt(example entity.Resume) string {
	parts := []string{
		"You are a resume parser.",
		"Make sure to keep descriptions very accurate and precise not going over 4 sentences anywhere.",
		"Use your judgment on the skill level based on the resume, and if you can't find something, leave it blank.",
		"Please provide the parsed resume strictly as a valid JSON object without any markdown formatting, code fences, or extra text.",
		"Here is the format you should follow strictly: " + mustJSON(example),
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt carries the extracted text verbatim.
func BuildUserPrompt(text string) string {
	return "Parse the following resume to the JSON format: " + text
}

// mustJSON serializes compactly without HTML escaping so URLs keep their '&'.
func mustJSON(v any) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
	return strings.TrimSuffix(b.String(), "\n")
}
