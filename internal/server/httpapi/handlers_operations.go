package httpapi

import (
	"net/http"
	"strings"

	"github.com/dberestov/webcalc/internal/server/services"
)

// operation serves the anonymous one-shot arithmetic routes. The operation
// tag is the route path itself (/add, /subtract, /multiply, /divide).
func (s *Server) operation(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	op := strings.TrimPrefix(r.URL.Path, "/")
	result, err := services.Compute(*req.A, *req.B, op)
	if err != nil {
		s.calculationError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, operationResponse{Result: result})
}
