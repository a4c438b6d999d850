package tenants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {

	query :=
		`INSERT INTO tenants (name)
         VALUES ($1)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, tenant.Name).Scan(&tenant.ID, &tenant.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tenant, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Tenant, error) {
	query := `SELECT id, name, created_at FROM tenants WHERE name = $1`

	tenant := &models.Tenant{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tenant, nil
}
