// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, bearer-token
// authentication, profile updates, and password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dberestov/webcalc/internal/common"
	"github.com/dberestov/webcalc/internal/dbx"
	"github.com/dberestov/webcalc/internal/server/auth"
	"github.com/dberestov/webcalc/internal/server/config"
	"github.com/dberestov/webcalc/internal/server/models"
	"github.com/dberestov/webcalc/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - Register: create accounts
// - Login: verify credentials and mint a bearer token
// - Authenticate: resolve a presented token back to an account
// - UpdateProfile / ChangePassword: account mutations
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account with the given username, email, and
// password. Uniqueness conflicts surface as common.ErrAlreadyExists; the
// insert is a single statement, so a failed registration leaves no state.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password for the account identified by username or
// email (whichever is set) and mints a bearer token. Unknown identifiers and
// wrong passwords both report common.ErrInvalidCredentials, so callers
// cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, username, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	var user *models.User
	var err error
	if username != "" {
		user, err = repo.GetByUsername(ctx, username)
	} else {
		user, err = repo.GetByEmail(ctx, email)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate resolves a presented bearer token to its account. Token
// verification errors pass through unchanged; a verified token whose
// account no longer exists yields common.ErrUnknownSubject. The call never
// mutates state.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownSubject
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// UpdateProfile replaces the account's username and email. Conflicting
// values surface as common.ErrAlreadyExists.
func (s *UserService) UpdateProfile(ctx context.Context, userID, username, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user := &models.User{ID: userID, Username: username, Email: email}
	if err := repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return repo.GetByID(ctx, userID)
}

// ChangePassword verifies oldPassword and atomically replaces the stored
// hash with one derived from newPassword. A mismatch yields
// common.ErrWrongOldPassword. Tokens issued before the change remain valid
// until their expiry; there is no revocation.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnknownSubject
			}
			return common.ErrorInternal
		}

		if !auth.CheckPassword(oldPassword, user.PasswordHash) {
			return common.ErrWrongOldPassword
		}

		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		return repo.UpdatePassword(ctx, userID, hash)
	})
}
