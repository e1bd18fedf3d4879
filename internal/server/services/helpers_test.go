package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dberestov/webcalc/internal/common"
	"github.com/dberestov/webcalc/internal/dbx"
	"github.com/dberestov/webcalc/internal/server/config"
	"github.com/dberestov/webcalc/internal/server/models"
	calcsrepo "github.com/dberestov/webcalc/internal/server/repositories/calculations"
	usersrepo "github.com/dberestov/webcalc/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeUsersRepo keeps accounts in memory and enforces username/email
// uniqueness under a mutex, mimicking the store's atomic constraint check.
type fakeUsersRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	f.nextID++
	stored := *u
	stored.ID = fmt.Sprintf("u-%d", f.nextID)
	stored.CreatedAt = time.Now()
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[u.ID]
	if !ok {
		return common.ErrorNotFound
	}
	for id, other := range f.byID {
		if id != u.ID && (other.Username == u.Username || other.Email == u.Email) {
			return common.ErrAlreadyExists
		}
	}
	stored.Username = u.Username
	stored.Email = u.Email
	return nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id string, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	stored.PasswordHash = hash
	return nil
}

// fakeCalcsRepo keeps calculations in memory, scoped by owner like the
// real repository's (id, user_id) queries.
type fakeCalcsRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Calculation

	insertErr error
}

func newFakeCalcsRepo() *fakeCalcsRepo {
	return &fakeCalcsRepo{byID: make(map[string]*models.Calculation)}
}

func (f *fakeCalcsRepo) Insert(ctx context.Context, c *models.Calculation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.byID[cp.ID] = &cp
	c.CreatedAt = cp.CreatedAt
	c.UpdatedAt = cp.UpdatedAt
	return nil
}

func (f *fakeCalcsRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Calculation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Calculation
	for _, c := range f.byID {
		if c.UserID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCalcsRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Calculation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok || c.UserID != ownerID {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCalcsRepo) Update(ctx context.Context, c *models.Calculation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[c.ID]
	if !ok || stored.UserID != c.UserID {
		return common.ErrorNotFound
	}
	*stored = *c
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCalcsRepo) Delete(ctx context.Context, id, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok || c.UserID != ownerID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeCalcsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Calculations(db dbx.DBTX) calcsrepo.Repository {
	return m.c
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}
