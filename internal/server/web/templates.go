package web

import (
	"embed"
	"html/template"
)

// View design is out of scope; these templates are the minimal markup needed
// to drive the form surface.

//go:embed templates/*.tmpl
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}
