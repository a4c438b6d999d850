package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ContactService owns the contact book. Every operation is scoped to the
// owner: a contact id belonging to another account behaves exactly like a
// missing one.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactService constructs a ContactService.
func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// List returns one page of the owner's contacts, ordered by last then first
// name. Page and size are clamped to sane bounds.
func (s *ContactService) List(ctx context.Context, ownerID int64, filter models.ContactFilter) (*models.ContactPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = defaultPageSize
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}

	return s.repomanager.Contacts(s.db).List(ctx, ownerID, filter)
}

// Get loads a single contact owned by ownerID.
func (s *ContactService) Get(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contact, nil
}

// Create stores a new contact for the owner.
func (s *ContactService) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	return s.repomanager.Contacts(s.db).Create(ctx, contact)
}

// Update applies a partial patch. An empty patch is valid and only bumps
// updated_at.
func (s *ContactService) Update(ctx context.Context, ownerID, id int64, patch models.ContactPatch) (*models.Contact, error) {
	contact, err := s.repomanager.Contacts(s.db).Update(ctx, ownerID, id, patch)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contact, nil
}

// Delete removes the contact.
func (s *ContactService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repomanager.Contacts(s.db).Delete(ctx, ownerID, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

// Search returns all matching contacts without paging.
func (s *ContactService) Search(ctx context.Context, ownerID int64, query string, favoriteOnly bool) ([]*models.Contact, error) {
	return s.repomanager.Contacts(s.db).Search(ctx, ownerID, query, favoriteOnly)
}

func mapNotFound(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return models.ErrContactNotFound
	}
	return err
}
