package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dberestov/webcalc/internal/common"
	"github.com/dberestov/webcalc/internal/server/models"
	"github.com/dberestov/webcalc/internal/server/operations"
	"github.com/dberestov/webcalc/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const defaultListLimit = 100

// CalculationService implements owner-scoped CRUD over calculation records.
// The owner is always the authenticated account; callers cannot address
// another account's records, which read as absent.
type CalculationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCalculationService constructs a CalculationService.
func NewCalculationService(db *sql.DB, m repomanager.RepositoryManager) *CalculationService {
	return &CalculationService{db: db, repomanager: m}
}

// Compute evaluates the operation tag over the two operands. Unknown tags
// yield common.ErrInvalidOperation, division by zero
// common.ErrDivisionByZero.
func Compute(a, b float64, operation string) (float64, error) {
	switch operation {
	case models.OperationAdd:
		return operations.Add(a, b), nil
	case models.OperationSubtract:
		return operations.Subtract(a, b), nil
	case models.OperationMultiply:
		return operations.Multiply(a, b), nil
	case models.OperationDivide:
		return operations.Divide(a, b)
	default:
		return 0, common.ErrInvalidOperation
	}
}

// Create computes the result and stores a new record owned by ownerID.
func (s *CalculationService) Create(ctx context.Context, ownerID string, a, b float64, operation string) (*models.Calculation, error) {
	result, err := Compute(a, b, operation)
	if err != nil {
		return nil, err
	}

	calc := &models.Calculation{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		A:         a,
		B:         b,
		Operation: operation,
		Result:    result,
	}

	repo := s.repomanager.Calculations(s.db)
	if err := repo.Insert(ctx, calc); err != nil {
		return nil, fmt.Errorf("error creating calculation: %w", err)
	}
	return calc, nil
}

// List returns ownerID's records, oldest first. Negative skip is clamped to
// zero; non-positive limit falls back to the default of 100.
func (s *CalculationService) List(ctx context.Context, ownerID string, skip, limit int) ([]*models.Calculation, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	repo := s.repomanager.Calculations(s.db)
	return repo.ListByOwner(ctx, ownerID, skip, limit)
}

// Get returns the record iff it exists and belongs to ownerID.
func (s *CalculationService) Get(ctx context.Context, ownerID, id string) (*models.Calculation, error) {
	repo := s.repomanager.Calculations(s.db)
	return repo.GetByID(ctx, id, ownerID)
}

// Update replaces the operands and operation of an owned record and
// recomputes its result.
func (s *CalculationService) Update(ctx context.Context, ownerID, id string, a, b float64, operation string) (*models.Calculation, error) {
	result, err := Compute(a, b, operation)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Calculations(s.db)
	calc, err := repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	calc.A = a
	calc.B = b
	calc.Operation = operation
	calc.Result = result
	if err := repo.Update(ctx, calc); err != nil {
		return nil, err
	}
	return calc, nil
}

// Delete removes an owned record.
func (s *CalculationService) Delete(ctx context.Context, ownerID, id string) error {
	repo := s.repomanager.Calculations(s.db)
	return repo.Delete(ctx, id, ownerID)
}
