package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	users UserService
}

func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates an account and immediately signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), req.Email, req.Username, req.Password, req.TenantName)
	if err != nil {
		return err
	}

	return h.respondWithToken(c, http.StatusCreated, user)
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return h.respondWithToken(c, http.StatusOK, user)
}

// Me returns the authenticated account. The bearer token the caller arrived
// with is echoed back so the response shape matches login.
func (h *AuthHandler) Me(c echo.Context) error {
	user := currentUser(c)

	header := c.Request().Header.Get(common.AuthorizationHeaderName)
	token := header[len(common.BearerPrefix):]

	return c.JSON(http.StatusOK, toLoginResponse(token, 0, user))
}

// Refresh mints a new token for the authenticated account.
func (h *AuthHandler) Refresh(c echo.Context) error {
	return h.respondWithToken(c, http.StatusOK, currentUser(c))
}

// Logout acknowledges the sign-out. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// RequestPasswordReset starts a reset. The response is identical whether or
// not the account exists.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.users.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, messageResponse{
		Message: "if the account exists, reset instructions have been sent",
	})
}

// ChangePassword replaces the password after verifying the current one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req passwordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := currentUser(c)
	if err := h.users.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

func (h *AuthHandler) respondWithToken(c echo.Context, status int, user *models.User) error {
	token, expiresIn, err := h.users.IssueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(status, toLoginResponse(token, expiresIn, user))
}
