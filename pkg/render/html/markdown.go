package html

import (
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// renderDescription converts markdown help text into sanitised HTML.
func renderDescription(text string, policy *bluemonday.Policy) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	// Parsers carry state and cannot be reused between documents.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	raw := markdown.ToHTML([]byte(text), p, renderer)
	return strings.TrimSpace(string(policy.SanitizeBytes(raw)))
}
