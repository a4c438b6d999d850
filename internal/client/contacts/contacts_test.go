package contacts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

type fakeAPI struct {
	listResp   *models.ContactList
	getResp    *models.Contact
	getErr     error
	getCalls   int
	createResp *models.Contact
	createErr  error
	updateResp *models.Contact
	updateErr  error
	deleteErr  error
	searchResp []*models.Contact
}

func (f *fakeAPI) ListContacts(_ context.Context, _ api.ListQuery) (*models.ContactList, error) {
	return f.listResp, nil
}

func (f *fakeAPI) GetContact(_ context.Context, _ int64) (*models.Contact, error) {
	f.getCalls++
	return f.getResp, f.getErr
}

func (f *fakeAPI) CreateContact(_ context.Context, _ models.ContactCreate) (*models.Contact, error) {
	return f.createResp, f.createErr
}

func (f *fakeAPI) UpdateContact(_ context.Context, _ int64, _ models.ContactUpdate) (*models.Contact, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeAPI) DeleteContact(_ context.Context, _ int64) error {
	return f.deleteErr
}

func (f *fakeAPI) SearchContacts(_ context.Context, _ models.ContactSearch) ([]*models.Contact, error) {
	return f.searchResp, nil
}

func contact(id int64, first string) *models.Contact {
	return &models.Contact{ID: id, FirstName: first, LastName: "Doe", Phone: "555-123-4567"}
}

func validCreate() models.ContactCreate {
	return models.ContactCreate{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-123-4567",
		Address:   "1 Main St",
	}
}

func TestGet_SecondLookupServedFromCache(t *testing.T) {
	f := &fakeAPI{getResp: contact(7, "Jane")}
	s := NewService(f)
	ctx := context.Background()

	first, err := s.Get(ctx, 7)
	require.NoError(t, err)
	second, err := s.Get(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, f.getCalls)
	assert.Same(t, first, second)
}

func TestList_WarmsDetailCache(t *testing.T) {
	f := &fakeAPI{listResp: &models.ContactList{
		Items: []*models.Contact{contact(1, "Jane"), contact(2, "John")},
		Total: 2, Page: 1, Size: 10, Pages: 1,
	}}
	s := NewService(f)
	ctx := context.Background()

	_, err := s.List(ctx, api.ListQuery{Page: 1, Size: 10})
	require.NoError(t, err)

	got, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Zero(t, f.getCalls)
}

func TestCreate_InvalidInputNeverReachesNetwork(t *testing.T) {
	f := &fakeAPI{createErr: errors.New("must not be called")}
	s := NewService(f)

	in := validCreate()
	in.FirstName = ""
	_, err := s.Create(context.Background(), in)
	require.EqualError(t, err, "first_name is required")
}

func TestCreate_PopulatesCache(t *testing.T) {
	f := &fakeAPI{createResp: contact(3, "Jane"), getErr: errors.New("must not be called")}
	s := NewService(f)
	ctx := context.Background()

	created, err := s.Create(ctx, validCreate())
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestUpdate_ReplacesCachedEntry(t *testing.T) {
	f := &fakeAPI{getResp: contact(7, "Jane"), updateResp: contact(7, "Janet")}
	s := NewService(f)
	ctx := context.Background()

	_, err := s.Get(ctx, 7)
	require.NoError(t, err)

	name := "Janet"
	updated, err := s.Update(ctx, 7, models.ContactUpdate{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)

	got, err := s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Same(t, updated, got)
	assert.Equal(t, 1, f.getCalls)
}

func TestUpdate_EmptyPatchAllowed(t *testing.T) {
	f := &fakeAPI{updateResp: contact(7, "Jane")}
	s := NewService(f)

	_, err := s.Update(context.Background(), 7, models.ContactUpdate{})
	require.NoError(t, err)
}

func TestUpdate_FailureInvalidatesEntry(t *testing.T) {
	f := &fakeAPI{getResp: contact(7, "Jane"), updateErr: errors.New("boom")}
	s := NewService(f)
	ctx := context.Background()

	_, err := s.Get(ctx, 7)
	require.NoError(t, err)

	name := "Janet"
	_, err = s.Update(ctx, 7, models.ContactUpdate{FirstName: &name})
	require.Error(t, err)

	_, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, f.getCalls, "entry refetched after failed update")
}

func TestDelete_InvalidatesEntry(t *testing.T) {
	f := &fakeAPI{getResp: contact(7, "Jane")}
	s := NewService(f)
	ctx := context.Background()

	_, err := s.Get(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, 7))

	_, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, f.getCalls)
}

func TestDelete_FailureKeepsEntry(t *testing.T) {
	f := &fakeAPI{getResp: contact(7, "Jane"), deleteErr: errors.New("boom")}
	s := NewService(f)
	ctx := context.Background()

	_, err := s.Get(ctx, 7)
	require.NoError(t, err)
	require.Error(t, s.Delete(ctx, 7))

	_, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, f.getCalls)
}

func TestSearch_BypassesCache(t *testing.T) {
	f := &fakeAPI{searchResp: []*models.Contact{contact(1, "Jane")}}
	s := NewService(f)

	got, err := s.Search(context.Background(), models.ContactSearch{Query: "jane"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].FirstName)
}
