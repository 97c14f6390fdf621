// Package views renders the site's pages with gomponents.
package views

import (
	"net/http"

	g "maragu.dev/gomponents"
)

// Page adapts a gomponents node to gin's render.Render.
type Page struct {
	Node g.Node
}

func (r Page) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.Node.Render(w)
}

func (r Page) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
