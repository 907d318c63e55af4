package generator

func promptItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objective": map[string]any{"type": "string"},
			"prompt":    map[string]any{"type": "string"},
			"tip":       map[string]any{"type": "string"},
		},
		"required":             []any{"objective", "prompt", "tip"},
		"additionalProperties": false,
	}
}

// LibrarySchema is the JSON Schema of Library. A fresh map is returned on every
// call so callers may hand it to SDKs that mutate their input.
func LibrarySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"context": map[string]any{"type": "string"},
			"mainPrompts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category": map[string]any{"type": "string"},
						"items": map[string]any{
							"type":  "array",
							"items": promptItemSchema(),
						},
					},
					"required":             []any{"category", "items"},
					"additionalProperties": false,
				},
			},
			"advancedPrompts": map[string]any{
				"type":  "array",
				"items": promptItemSchema(),
			},
			"bestPractices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"context", "mainPrompts", "advancedPrompts", "bestPractices"},
		"additionalProperties": false,
	}
}
