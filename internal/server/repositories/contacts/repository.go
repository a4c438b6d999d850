package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, filter models.ContactFilter) (*models.ContactPage, error)
	GetByID(ctx context.Context, ownerID, id int64) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, ownerID, id int64, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, ownerID, id int64) error
	Search(ctx context.Context, ownerID int64, query string, favoriteOnly bool) ([]*models.Contact, error)
}
