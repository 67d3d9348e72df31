// Package templates embeds the HTML pages. Rendering is deliberately
// plain; the pages exist to carry the form flows.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page into one template set. Pages are
// addressed by filename, e.g. "login.html".
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
