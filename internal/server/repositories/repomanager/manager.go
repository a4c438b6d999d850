package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/tenants"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tenants(db dbx.DBTX) tenants.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
