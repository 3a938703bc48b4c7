// Package repomanager vends repository implementations bound to a database
// handle and owns schema migration.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/taskflow/taskflow/internal/dbx"
	"github.com/taskflow/taskflow/internal/server/repositories/tasks"
	"github.com/taskflow/taskflow/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either a *sql.DB or an
// open transaction, so services can run multi-statement flows under dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
