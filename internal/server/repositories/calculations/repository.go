package calculations

import (
	"context"

	"github.com/dberestov/webcalc/internal/server/models"
)

// Repository is the owner-scoped calculation store. Every lookup and
// mutation is keyed by (id, ownerID); a row owned by someone else is
// indistinguishable from a missing one (common.ErrorNotFound).
type Repository interface {
	Insert(ctx context.Context, calc *models.Calculation) error
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Calculation, error)
	GetByID(ctx context.Context, id, ownerID string) (*models.Calculation, error)
	Update(ctx context.Context, calc *models.Calculation) error
	Delete(ctx context.Context, id, ownerID string) error
}
