package models

import "time"

// Contact is an address-book row. Contacts belong to exactly one owner and
// are never visible across accounts.
type Contact struct {
	ID        int64
	OwnerID   int64
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	Address   string
	Notes     *string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName renders the display name the way clients list contacts.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ContactPatch is a partial update. Nil fields keep the stored value; an
// all-nil patch still bumps updated_at.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
	Notes     *string
	Favorite  *bool
}

// ContactFilter narrows a contact listing.
type ContactFilter struct {
	Search   string
	Favorite *bool
	Page     int
	Size     int
}

// ContactPage is one page of a contact listing.
type ContactPage struct {
	Items []*Contact
	Total int
	Page  int
	Size  int
}

// Pages derives the page count the way list responses report it.
func (p *ContactPage) Pages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}
