package models

import "time"

// Contact is a single address-book record owned by the authenticated user.
// The client only ever holds ephemeral cached copies; the backend owns the
// data.
type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Address   string    `json:"address"`
	Notes     *string   `json:"notes"`
	Favorite  bool      `json:"favorite"`
	OwnerID   int64     `json:"owner_id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactCreate is the request body of POST /contacts. Favorite defaults to
// false server-side when omitted.
type ContactCreate struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     string  `json:"phone" validate:"required,max=20,ck_phone"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address   string  `json:"address" validate:"required,max=255"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Favorite  *bool   `json:"favorite,omitempty"`
}

// ContactUpdate is the request body of PUT /contacts/{id}. All fields are
// optional; absent fields are left untouched by the backend, and an empty
// patch only bumps updated_at.
type ContactUpdate struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20,ck_phone"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address   *string `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Favorite  *bool   `json:"favorite,omitempty"`
}

// ContactSearch is the request body of POST /contacts/search.
type ContactSearch struct {
	Query        string `json:"query" validate:"required,min=1,max=100"`
	FavoriteOnly bool   `json:"favorite_only"`
}

// ContactList is the paged success body of GET /contacts.
type ContactList struct {
	Items []*Contact `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
	Pages int        `json:"pages"`
}
