// ABOUTME: Template loading and rendering for the admin pages.
// ABOUTME: Embeds the layout and page templates, parsed once at startup.

package admin

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*
var templateFS embed.FS

var pageTmpls map[string]*template.Template

// pageDefinitions maps page names to their template files
func getPageDefinitions() map[string]string {
	return map[string]string{
		"dashboard":  "templates/dashboard.html",
		"table-list": "templates/list.html",
	}
}

func init() {
	layout := template.Must(template.ParseFS(templateFS, "templates/layout.html"))

	pageTmpls = make(map[string]*template.Template)
	for name, path := range getPageDefinitions() {
		tmpl := template.Must(layout.Clone())
		pageTmpls[name] = template.Must(tmpl.ParseFS(templateFS, path))
	}
}

func renderPage(w io.Writer, page string, data any) error {
	tmpl, ok := pageTmpls[page]
	if !ok {
		return nil
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
