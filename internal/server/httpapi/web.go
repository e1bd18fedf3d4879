package httpapi

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// index renders the browser page that drives the JSON API.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]string{"Title": "webcalc"}); err != nil {
		s.logger.Error(r.Context(), "template rendering failed", "error", err.Error())
	}
}
