package users

import (
	"context"

	"github.com/dberestov/webcalc/internal/server/models"
)

// Repository is the account store consumed by the user service. Create and
// Update surface common.ErrAlreadyExists on username/email uniqueness
// violations; lookups surface common.ErrorNotFound on missing rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
