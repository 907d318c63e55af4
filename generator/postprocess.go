package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrEmptyReply     = errors.New("model returned an empty reply")
	ErrInvalidJSON    = errors.New("model reply is not valid JSON")
	ErrSchemaMismatch = errors.New("model reply does not match the library schema")
)

var librarySchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(LibrarySchema()))
	if err != nil {
		panic(fmt.Sprintf("library schema: %v", err))
	}
	return s
}

// PostProcess validates the raw model text and decodes it into a Library.
func PostProcess(raw string) (Library, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return Library{}, ErrEmptyReply
	}
	if !json.Valid([]byte(text)) {
		return Library{}, fmt.Errorf("%w: %s", ErrInvalidJSON, preview(text, 120))
	}

	result, err := librarySchema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return Library{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return Library{}, fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(errs, "; "))
	}

	var lib Library
	if err := json.Unmarshal([]byte(text), &lib); err != nil {
		return Library{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return normalize(lib), nil
}

// Some models wrap JSON in ```json fences even when asked not to.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func normalize(lib Library) Library {
	lib.Context = strings.TrimSpace(lib.Context)
	for i := range lib.MainPrompts {
		lib.MainPrompts[i].Category = strings.TrimSpace(lib.MainPrompts[i].Category)
		for j := range lib.MainPrompts[i].Items {
			lib.MainPrompts[i].Items[j] = trimItem(lib.MainPrompts[i].Items[j])
		}
	}
	for i := range lib.AdvancedPrompts {
		lib.AdvancedPrompts[i] = trimItem(lib.AdvancedPrompts[i])
	}
	for i := range lib.BestPractices {
		lib.BestPractices[i] = strings.TrimSpace(lib.BestPractices[i])
	}
	return lib
}

func trimItem(it PromptItem) PromptItem {
	return PromptItem{
		Objective: strings.TrimSpace(it.Objective),
		Prompt:    strings.TrimSpace(it.Prompt),
		Tip:       strings.TrimSpace(it.Tip),
	}
}

func preview(s string, limit int) string {
	compact := strings.Join(strings.Fields(s), " ")
	if len(compact) <= limit {
		return compact
	}
	r := []rune(compact)
	if len(r) <= limit {
		return compact
	}
	return string(r[:limit]) + "…"
}
