package transport

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// UserService is the slice of the user service the HTTP layer depends on.
type UserService interface {
	Register(ctx context.Context, email, username, password, tenantName string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	RequestPasswordReset(ctx context.Context, email string) error
	IssueToken(user *models.User) (string, int64, error)
	VerifyToken(token string) (int64, error)
}

// ContactService is the slice of the contact service the HTTP layer depends
// on.
type ContactService interface {
	List(ctx context.Context, ownerID int64, filter models.ContactFilter) (*models.ContactPage, error)
	Get(ctx context.Context, ownerID, id int64) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, ownerID, id int64, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, ownerID, id int64) error
	Search(ctx context.Context, ownerID int64, query string, favoriteOnly bool) ([]*models.Contact, error)
}
