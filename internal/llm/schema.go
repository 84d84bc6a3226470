package llm

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// It is the validation contract for model output and is kept separate from the
// example shown in the prompt: every section and every field is required, strings
// may be empty, skill levels are bounded and no extra keys are accepted.
func BuildResumeJSONSchema() map[string]any {
	personal := strictObject(map[string]any{
		"name":     stringProp(),
		"role":     stringProp(),
		"tagline":  stringProp(),
		"email":    stringProp(),
		"phone":    stringProp(),
		"location": stringProp(),
		"bio":      stringProp(),
		"avatar":   stringProp(),
	})

	experience := arrayOf(strictObject(map[string]any{
		"id":           integerProp(),
		"company":      stringProp(),
		"position":     stringProp(),
		"duration":     stringProp(),
		"description":  stringProp(),
		"technologies": stringArrayProp(),
	}))

	skills := arrayOf(strictObject(map[string]any{
		"name":     stringProp(),
		"level":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"category": stringProp(),
	}))

	projects := arrayOf(strictObject(map[string]any{
		"id":              integerProp(),
		"title":           stringProp(),
		"description":     stringProp(),
		"longDescription": stringProp(),
		"image":           stringProp(),
		"technologies":    stringArrayProp(),
		"github":          stringProp(),
		"demo":            stringProp(),
		"featured":        map[string]any{"type": "boolean"},
	}))

	education := arrayOf(strictObject(map[string]any{
		"id":          integerProp(),
		"institution": stringProp(),
		"degree":      stringProp(),
		"duration":    stringProp(),
		"description": stringProp(),
		"logo":        stringProp(),
	}))

	return strictObject(map[string]any{
		"personal":   personal,
		"experience": experience,
		"skills":     skills,
		"projects":   projects,
		"education":  education,
	})
}

// strictObject requires every listed property and forbids others.
func strictObject(props map[string]any) map[string]any {
	required := make([]string, 0, len(props))
	for k := range props {
		required = append(required, k)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func stringProp() map[string]any {
	return map[string]any{"type": "string"}
}

func integerProp() map[string]any {
	return map[string]any{"type": "integer"}
}

func stringArrayProp() map[string]any {
	return arrayOf(stringProp())
}
