package transport

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// userContextKey is where the auth middleware stores the resolved account.
const userContextKey = "auth.user"

// bearerAuth resolves the Authorization header to an account and injects it
// into the request context. Expired tokens get their own message so clients
// can trigger a refresh.
func bearerAuth(users UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(common.AuthorizationHeaderName)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := users.VerifyToken(parts[1])
			if err != nil {
				return err
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, models.ErrUserInactive.Error())
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// currentUser returns the account stored by bearerAuth. Only call from
// handlers behind the middleware.
func currentUser(c echo.Context) *models.User {
	return c.Get(userContextKey).(*models.User)
}
