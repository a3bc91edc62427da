// Package web carries the server-rendered views, embedded so the binary and
// the tests render the same templates regardless of working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html templates/books/*.html
var files embed.FS

// Templates parses the full view set for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files,
		"templates/*.html",
		"templates/books/*.html",
	))
}
