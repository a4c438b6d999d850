package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// ContactHandler serves the /contacts endpoints. Every route sits behind the
// auth middleware, so handlers always operate on the caller's own contacts.
type ContactHandler struct {
	contacts ContactService
}

func NewContactHandler(contacts ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List returns one page of the caller's contacts. Query parameters: page,
// size, search, favorite.
func (h *ContactHandler) List(c echo.Context) error {
	user := currentUser(c)

	filter := models.ContactFilter{
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a number")
		}
		filter.Page = n
	}
	if v := c.QueryParam("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be a number")
		}
		filter.Size = n
	}
	if v := c.QueryParam("favorite"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "favorite must be true or false")
		}
		filter.Favorite = &b
	}

	page, err := h.contacts.List(c.Request().Context(), user.ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactListResponse(page))
}

// Get returns a single contact.
func (h *ContactHandler) Get(c echo.Context) error {
	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return err
	}

	contact, err := h.contacts.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Create stores a new contact for the caller.
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := currentUser(c)
	contact := &models.Contact{
		OwnerID:   user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Notes:     req.Notes,
	}
	if req.Favorite != nil {
		contact.Favorite = *req.Favorite
	}

	created, err := h.contacts.Create(c.Request().Context(), contact)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toContactResponse(created))
}

// Update applies a partial update; absent fields keep their stored value.
func (h *ContactHandler) Update(c echo.Context) error {
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return err
	}

	updated, err := h.contacts.Update(c.Request().Context(), user.ID, id, models.ContactPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Notes:     req.Notes,
		Favorite:  req.Favorite,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(updated))
}

// Delete removes the contact.
func (h *ContactHandler) Delete(c echo.Context) error {
	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return err
	}

	if err := h.contacts.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search returns all matching contacts without paging.
func (h *ContactHandler) Search(c echo.Context) error {
	var req searchContactsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := currentUser(c)
	found, err := h.contacts.Search(c.Request().Context(), user.ID, req.Query, req.FavoriteOnly)
	if err != nil {
		return err
	}

	out := make([]*contactResponse, 0, len(found))
	for _, contact := range found {
		out = append(out, toContactResponse(contact))
	}
	return c.JSON(http.StatusOK, out)
}

func contactID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid contact id")
	}
	return id, nil
}
