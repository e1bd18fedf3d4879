package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dberestov/webcalc/internal/common"
)

func (s *Server) createCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req calculationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	calc, err := s.calcs.Create(r.Context(), user.ID, *req.A, *req.B, req.Type)
	if err != nil {
		s.calculationError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newCalculationResponse(calc))
}

func (s *Server) listCalculations(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	calcs, err := s.calcs.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := make([]calculationResponse, 0, len(calcs))
	for _, c := range calcs {
		resp = append(resp, newCalculationResponse(c))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	calc, err := s.calcs.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.calculationError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCalculationResponse(calc))
}

func (s *Server) updateCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req calculationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	calc, err := s.calcs.Update(r.Context(), user.ID, r.PathValue("id"), *req.A, *req.B, req.Type)
	if err != nil {
		s.calculationError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCalculationResponse(calc))
}

func (s *Server) deleteCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := s.calcs.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		s.calculationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// calculationError translates service failures for calculation endpoints.
// Ownership-scoped misses read as plain 404s; validation problems as 400s.
func (s *Server) calculationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.writeError(w, http.StatusNotFound, "calculation not found")
	case errors.Is(err, common.ErrInvalidOperation):
		s.writeError(w, http.StatusBadRequest, "invalid calculation type")
	case errors.Is(err, common.ErrDivisionByZero):
		s.writeError(w, http.StatusBadRequest, "cannot divide by zero")
	default:
		s.internalError(w, r, err)
	}
}
