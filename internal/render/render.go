// Package render produces the HTML inventory page from view records.
package render

import (
	_ "embed"
	"html/template"
	"io"
	"time"

	"sienna-watch/internal/view"
)

//go:embed index.html.tmpl
var indexHTML string

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
}).Parse(indexHTML))

// PageData is the template input for the inventory page.
type PageData struct {
	Vehicles    []*view.Record
	GeneratedAt time.Time
}

// Index writes the inventory page to w.
func Index(w io.Writer, data PageData) error {
	return indexTemplate.Execute(w, data)
}
