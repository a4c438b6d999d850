package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

// ListQuery describes the paging and filtering knobs of GET /contacts.
// Zero values mean "server default" / "no filter".
type ListQuery struct {
	Page     int
	Size     int
	Search   string
	Favorite *bool
}

// ListContacts fetches one page of the owner's contacts.
func (c *Client) ListContacts(ctx context.Context, q ListQuery) (*models.ContactList, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Favorite != nil {
		params.Set("favorite", strconv.FormatBool(*q.Favorite))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/contacts", params, nil)
	if err != nil {
		return nil, err
	}
	var out models.ContactList
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContact fetches a single contact by id.
func (c *Client) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/contacts/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var out models.Contact
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContact creates a contact and returns the server-populated record.
func (c *Client) CreateContact(ctx context.Context, in models.ContactCreate) (*models.Contact, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/contacts", nil, in)
	if err != nil {
		return nil, err
	}
	var out models.Contact
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContact applies a partial update. An empty patch leaves every field
// unchanged except updated_at.
func (c *Client) UpdateContact(ctx context.Context, id int64, in models.ContactUpdate) (*models.Contact, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/contacts/%d", id), nil, in)
	if err != nil {
		return nil, err
	}
	var out models.Contact
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a contact by id.
func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/contacts/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// SearchContacts runs the advanced search endpoint.
func (c *Client) SearchContacts(ctx context.Context, q models.ContactSearch) ([]*models.Contact, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/contacts/search", nil, q)
	if err != nil {
		return nil, err
	}
	var out []*models.Contact
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
