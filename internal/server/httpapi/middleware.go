package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dberestov/webcalc/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// userFromContext returns the authenticated account stashed by withAuth.
func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// withAuth guards a handler behind bearer-token authentication. The exact
// failure (malformed token, bad signature, expiry, unknown subject) is
// logged for diagnostics, but the client always sees the same 401.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			s.logger.Warn(r.Context(), "authentication failed", "path", r.URL.Path, "reason", err.Error())
			s.writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
