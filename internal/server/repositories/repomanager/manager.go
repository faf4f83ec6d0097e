// Package repomanager binds the repository implementations together and owns
// schema migrations. Services take a manager plus a DBTX so the same
// repository code runs inside and outside transactions.
package repomanager

import (
	"context"
	"database/sql"

	"taskpurse/internal/dbx"
	"taskpurse/internal/server/repositories/budgetitems"
	"taskpurse/internal/server/repositories/refreshtokens"
	"taskpurse/internal/server/repositories/tasks"
	"taskpurse/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	BudgetItems(db dbx.DBTX) budgetitems.Repository
}
