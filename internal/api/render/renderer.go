// Package render implements echo.Renderer over html/template. The view
// markup itself is deliberately minimal: the templates are the thin seam
// between handlers and whatever front-end is layered on top.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders the embedded HTML templates by file name.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
