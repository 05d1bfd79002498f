package web

import "html/template"

// Templates parses the embedded HTML templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(TemplatesFS, "templates/*.html")
}
