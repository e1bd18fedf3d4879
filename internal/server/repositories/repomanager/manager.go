package repomanager

import (
	"context"
	"database/sql"

	"github.com/dberestov/webcalc/internal/dbx"
	"github.com/dberestov/webcalc/internal/server/repositories/calculations"
	"github.com/dberestov/webcalc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Calculations(db dbx.DBTX) calculations.Repository
}
