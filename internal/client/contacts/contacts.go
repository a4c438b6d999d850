// Package contacts is the client-side resource layer for the contact book.
// It fronts the API client with a small in-memory cache so repeated detail
// lookups within a session do not hit the network; every mutation drops the
// affected entry. Nothing is persisted to disk.
package contacts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/validation"
)

// Service is the operation surface the CLI works against.
type Service interface {
	List(ctx context.Context, q api.ListQuery) (*models.ContactList, error)
	Get(ctx context.Context, id int64) (*models.Contact, error)
	Create(ctx context.Context, in models.ContactCreate) (*models.Contact, error)
	Update(ctx context.Context, id int64, in models.ContactUpdate) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q models.ContactSearch) ([]*models.Contact, error)
}

// APIClient is the slice of the API client the service needs. Narrowed for
// testability.
type APIClient interface {
	ListContacts(ctx context.Context, q api.ListQuery) (*models.ContactList, error)
	GetContact(ctx context.Context, id int64) (*models.Contact, error)
	CreateContact(ctx context.Context, in models.ContactCreate) (*models.Contact, error)
	UpdateContact(ctx context.Context, id int64, in models.ContactUpdate) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	SearchContacts(ctx context.Context, q models.ContactSearch) ([]*models.Contact, error)
}

type service struct {
	client   APIClient
	validate *validation.Validator

	mu    sync.Mutex
	cache map[int64]*models.Contact
}

// NewService builds a Service with an empty cache.
func NewService(client APIClient) Service {
	return &service{
		client:   client,
		validate: validation.New(),
		cache:    make(map[int64]*models.Contact),
	}
}

// List always asks the server: search, paging and favorite filtering are
// server-side concerns. The returned page warms the detail cache.
func (s *service) List(ctx context.Context, q api.ListQuery) (*models.ContactList, error) {
	list, err := s.client.ListContacts(ctx, q)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, c := range list.Items {
		s.cache[c.ID] = c
	}
	s.mu.Unlock()

	return list, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Contact, error) {
	s.mu.Lock()
	cached, ok := s.cache[id]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	c, err := s.client.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[id] = c
	s.mu.Unlock()

	return c, nil
}

func (s *service) Create(ctx context.Context, in models.ContactCreate) (*models.Contact, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	c, err := s.client.CreateContact(ctx, in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[c.ID] = c
	s.mu.Unlock()

	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, in models.ContactUpdate) (*models.Contact, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	c, err := s.client.UpdateContact(ctx, id, in)
	if err != nil {
		// Stale on failure only if the server may have applied the change;
		// dropping the entry is always safe.
		s.invalidate(id)
		return nil, err
	}

	s.mu.Lock()
	s.cache[id] = c
	s.mu.Unlock()

	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteContact(ctx, id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// Search bypasses the cache entirely: results depend on server-side matching.
func (s *service) Search(ctx context.Context, q models.ContactSearch) ([]*models.Contact, error) {
	return s.client.SearchContacts(ctx, q)
}

func (s *service) invalidate(id int64) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}
