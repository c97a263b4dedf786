package httpapi

import (
	"embed"
	"html"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

func pageTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"formatDate": formatDate,
		"snippet":    snippet,
		"safeHTML":   safeHTML,
	}).ParseFS(templateFS, "templates/*.html"))
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// safeHTML marks stored rich-text content as renderable. Content enters the
// store only through the editor surface; the feed and dashboard show
// stripped snippets instead.
func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

// snippet strips markup from rich-text content and truncates it for card
// previews.
func snippet(s string, max int) string {
	text := strings.Join(strings.Fields(stripTags(s)), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}
