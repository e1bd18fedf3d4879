package httpapi

import (
	"strings"
	"time"

	"github.com/dberestov/webcalc/internal/server/models"
)

// Request/response DTOs for the JSON API. Errors always travel as
// {"error": "..."} so browser clients have one shape to handle.

type errorResponse struct {
	Error string `json:"error"`
}

type operationRequest struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

type operationResponse struct {
	Result float64 `json:"result"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the sole accepted login form: a JSON body naming the
// account by username or email. Query-parameter login is not supported.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type calculationRequest struct {
	A    *float64 `json:"a"`
	B    *float64 `json:"b"`
	Type string   `json:"type"`
}

type calculationResponse struct {
	ID        string    `json:"id"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Type      string    `json:"type"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCalculationResponse(c *models.Calculation) calculationResponse {
	return calculationResponse{
		ID:        c.ID,
		A:         c.A,
		B:         c.B,
		Type:      c.Operation,
		Result:    c.Result,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *registerRequest) validate() string {
	if len(r.Username) < 3 || len(r.Username) > 50 {
		return "username must be between 3 and 50 characters"
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return "email must be a valid address"
	}
	if len(r.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

func (r *loginRequest) validate() string {
	if r.Username == "" && r.Email == "" {
		return "username or email is required"
	}
	if r.Password == "" {
		return "password is required"
	}
	return ""
}

func (r *updateProfileRequest) validate() string {
	if len(r.Username) < 3 || len(r.Username) > 50 {
		return "username must be between 3 and 50 characters"
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return "email must be a valid address"
	}
	return ""
}

func (r *changePasswordRequest) validate() string {
	if r.OldPassword == "" {
		return "old_password is required"
	}
	if len(r.NewPassword) < 8 {
		return "new_password must be at least 8 characters"
	}
	return ""
}

func (r *operationRequest) validate() string {
	if r.A == nil || r.B == nil {
		return "both a and b must be numbers"
	}
	return ""
}

func (r *calculationRequest) validate() string {
	if r.A == nil || r.B == nil {
		return "both a and b must be numbers"
	}
	if r.Type == "" {
		return "type is required"
	}
	return ""
}
