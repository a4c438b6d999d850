package tenants

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	GetByName(ctx context.Context, name string) (*models.Tenant, error)
}
