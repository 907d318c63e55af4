package generator

// PromptItem is one reusable template with bracketed placeholders.
type PromptItem struct {
	Objective string `json:"objective"`
	Prompt    string `json:"prompt"`
	Tip       string `json:"tip"`
}

// Category groups the main prompts under a heading.
type Category struct {
	Category string       `json:"category"`
	Items    []PromptItem `json:"items"`
}

// Library is the full model reply for one Selection.
type Library struct {
	Context         string       `json:"context"`
	MainPrompts     []Category   `json:"mainPrompts"`
	AdvancedPrompts []PromptItem `json:"advancedPrompts"`
	BestPractices   []string     `json:"bestPractices"`
}

// PromptCount is the number of main prompts across all categories.
func (l Library) PromptCount() int {
	n := 0
	for _, c := range l.MainPrompts {
		n += len(c.Items)
	}
	return n
}
