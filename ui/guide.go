package ui

import (
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleGuide renders the embedded how-to document
func (a *App) handleGuide(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("GUIDE.md")
	if err != nil {
		a.logger.Error("guide not embedded: %v", err)
		http.Error(w, "Guide unavailable", http.StatusInternalServerError)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(src, p, renderer)

	data := struct {
		Content template.HTML
	}{
		Content: template.HTML(rendered),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "guide.html", data); err != nil {
		a.logger.Error("template render failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
