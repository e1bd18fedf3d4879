// Package httpapi exposes the calculator service over HTTP: JSON endpoints
// for accounts and calculations, bare arithmetic routes, and a
// server-rendered index page.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dberestov/webcalc/internal/logging"
	"github.com/dberestov/webcalc/internal/server/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UserService is the account-facing surface the handlers consume.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, email, password string) (string, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, username, email string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// CalculationService is the calculation-facing surface the handlers consume.
type CalculationService interface {
	Create(ctx context.Context, ownerID string, a, b float64, operation string) (*models.Calculation, error)
	List(ctx context.Context, ownerID string, skip, limit int) ([]*models.Calculation, error)
	Get(ctx context.Context, ownerID, id string) (*models.Calculation, error)
	Update(ctx context.Context, ownerID, id string, a, b float64, operation string) (*models.Calculation, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Server struct {
	mux    *http.ServeMux
	logger logging.Logger
	users  UserService
	calcs  CalculationService
}

func NewServer(logger logging.Logger, users UserService, calcs CalculationService) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		users:  users,
		calcs:  calcs,
	}
	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	s.mux.HandleFunc("GET /{$}", s.index)

	s.mux.HandleFunc("POST /add", s.operation)
	s.mux.HandleFunc("POST /subtract", s.operation)
	s.mux.HandleFunc("POST /multiply", s.operation)
	s.mux.HandleFunc("POST /divide", s.operation)

	s.mux.HandleFunc("POST /users/{$}", s.register)
	s.mux.HandleFunc("POST /users/login", s.login)
	s.mux.HandleFunc("GET /users/me", s.withAuth(s.profile))
	s.mux.HandleFunc("PUT /users/me", s.withAuth(s.updateProfile))
	s.mux.HandleFunc("POST /users/me/password", s.withAuth(s.changePassword))

	s.mux.HandleFunc("GET /calculations/{$}", s.withAuth(s.listCalculations))
	s.mux.HandleFunc("POST /calculations/{$}", s.withAuth(s.createCalculation))
	s.mux.HandleFunc("GET /calculations/{id}", s.withAuth(s.getCalculation))
	s.mux.HandleFunc("PUT /calculations/{id}", s.withAuth(s.updateCalculation))
	s.mux.HandleFunc("DELETE /calculations/{id}", s.withAuth(s.deleteCalculation))

	s.mux.HandleFunc("GET /ping", s.ping)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler returns the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.withMetrics(s.mux))
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			s.logger.Error(context.Background(), "response encoding failed", "error", err.Error())
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON parses the request body into dst; a false return means a 400
// has already been written.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
