package httpapi

import (
	"errors"
	"net/http"

	"github.com/dberestov/webcalc/internal/common"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.writeError(w, http.StatusBadRequest, "username or email already exists")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "account registered", "username", user.Username)
	s.writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	s.writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req updateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.users.UpdateProfile(r.Context(), user.ID, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.writeError(w, http.StatusBadRequest, "username or email already exists")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newUserResponse(updated))
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req changePasswordRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		s.writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.users.ChangePassword(r.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, common.ErrWrongOldPassword) {
			s.writeError(w, http.StatusBadRequest, "old password is incorrect")
			return
		}
		s.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// internalError hides failure detail from the client and logs it instead.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
