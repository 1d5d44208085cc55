// Package templates embeds the server-rendered HTML of the panel.
package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var funcMap = template.FuncMap{
	// formatTime renders an optional timestamp, "never" when absent.
	"formatTime": func(t *time.Time) string {
		if t == nil {
			return "never"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
}

// Load parses the embedded template set.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(files, "*.html")
}

// MustLoad parses the embedded template set and panics on failure. The
// templates ship with the binary, so a parse error is a build defect.
func MustLoad() *template.Template {
	return template.Must(Load())
}
