package repomanager

import (
	"context"
	"database/sql"

	"github.com/pandroidYT/doxxd-backend/internal/dbx"
	"github.com/pandroidYT/doxxd-backend/internal/server/repositories/posts"
	"github.com/pandroidYT/doxxd-backend/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can use the same repository code inside and outside transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
}
