// Package render turns generated libraries into HTML fragments and Markdown.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"ops_prompt_library/generator"
)

// Segment is a run of prompt text; Placeholder marks a [BRACKETED] field.
type Segment struct {
	Text        string
	Placeholder bool
}

var placeholderRe = regexp.MustCompile(`\[[^\]]+\]`)

// Segments splits a prompt template around its placeholders. Joining the
// segment texts reproduces the input exactly.
func Segments(prompt string) []Segment {
	matches := placeholderRe.FindAllStringIndex(prompt, -1)
	if len(matches) == 0 {
		if prompt == "" {
			return nil
		}
		return []Segment{{Text: prompt}}
	}
	out := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, Segment{Text: prompt[last:m[0]]})
		}
		out = append(out, Segment{Text: prompt[m[0]:m[1]], Placeholder: true})
		last = m[1]
	}
	if last < len(prompt) {
		out = append(out, Segment{Text: prompt[last:]})
	}
	return out
}

// Placeholders lists distinct placeholders in order of first appearance.
func Placeholders(prompt string) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range placeholderRe.FindAllString(prompt, -1) {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

var md = goldmark.New()

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Markdown renders model prose. Angle brackets are escaped first so text like
// <LINEA> is shown literally instead of being dropped as raw HTML. Lists stay
// block-level, so the result belongs in a <div>, not a <p>.
func Markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(angleEscaper.Replace(text)), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(unwrapParagraph(buf.String()))
}

// A single paragraph is unwrapped so short prose flows inline after a label.
func unwrapParagraph(html string) string {
	s := strings.TrimSpace(html)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		return strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return s
}

// LibraryMarkdown exports a library as a standalone Markdown document.
func LibraryMarkdown(sel generator.Selection, lib generator.Library) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Biblioteca Operativa: %s · %s\n\n", sel.Solution, sel.Sector))

	b.WriteString("## Visión Operativa\n\n")
	b.WriteString("> " + strings.ReplaceAll(lib.Context, "\n", "\n> ") + "\n\n")

	for _, c := range lib.MainPrompts {
		b.WriteString("## " + c.Category + "\n\n")
		for _, it := range c.Items {
			writeItem(&b, "### 🎯 "+it.Objective, it, "Tip de ajuste")
		}
	}

	if len(lib.AdvancedPrompts) > 0 {
		b.WriteString("## Ingeniería de Procesos Avanzada\n\n")
		for _, it := range lib.AdvancedPrompts {
			writeItem(&b, "### Módulo: "+it.Objective, it, "Recomendación")
		}
	}

	if len(lib.BestPractices) > 0 {
		b.WriteString("## Protocolos de Eficiencia & Mejora Continua\n\n")
		for i, p := range lib.BestPractices {
			b.WriteString(fmt.Sprintf("- **A%d** %s\n", i+1, p))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeItem(b *strings.Builder, heading string, it generator.PromptItem, tipLabel string) {
	b.WriteString(heading + "\n\n")
	b.WriteString("```text\n" + it.Prompt + "\n```\n\n")
	if ph := Placeholders(it.Prompt); len(ph) > 0 {
		b.WriteString("Campos: " + strings.Join(ph, ", ") + "\n\n")
	}
	b.WriteString(fmt.Sprintf("*%s:* %s\n\n", tipLabel, it.Tip))
}
