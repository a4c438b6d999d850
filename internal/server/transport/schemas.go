package transport

import (
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// --- Request types ---

type registerRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Username   string `json:"username" validate:"required,min=3,max=50,ck_username"`
	Password   string `json:"password" validate:"required,min=8,max=50,ck_password"`
	TenantName string `json:"tenant_name" validate:"omitempty,min=2,max=100"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type passwordUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=50,ck_password"`
}

type createContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     string  `json:"phone" validate:"required,max=20,ck_phone"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Address   string  `json:"address" validate:"required,max=255"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
	Favorite  *bool   `json:"favorite"`
}

type updateContactRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20,ck_phone"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Address   *string `json:"address" validate:"omitempty,min=1,max=255"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
	Favorite  *bool   `json:"favorite"`
}

type searchContactsRequest struct {
	Query        string `json:"query" validate:"required,min=1,max=100"`
	FavoriteOnly bool   `json:"favorite_only"`
}

// --- Response types ---

type userResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	TenantID  int64      `json:"tenant_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

type loginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *userResponse `json:"user"`
}

type contactResponse struct {
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

type contactListResponse struct {
	Items []*contactResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Pages int                `json:"pages"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Mappers ---

func toUserResponse(u *models.User) *userResponse {
	return &userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		TenantID:  u.TenantID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func toLoginResponse(token string, expiresIn int64, u *models.User) *loginResponse {
	return &loginResponse{
		AccessToken: token,
		TokenType:   common.TokenTypeBearer,
		ExpiresIn:   expiresIn,
		User:        toUserResponse(u),
	}
}

func toContactResponse(c *models.Contact) *contactResponse {
	return &contactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		Favorite:  c.Favorite,
		OwnerID:   c.OwnerID,
		FullName:  c.FullName(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toContactListResponse(page *models.ContactPage) *contactListResponse {
	items := make([]*contactResponse, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, toContactResponse(c))
	}
	return &contactListResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages(),
	}
}
