package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// errorResponse is the canonical error envelope for all API errors. Clients
// read the detail field verbatim.
type errorResponse struct {
	Detail string `json:"detail"`
}

// newHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func newHTTPErrorHandler(log logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log logging.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrUsernameTaken):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrUserInactive):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, models.ErrContactNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error(c.Request().Context(), "unhandled error",
		"err", err,
		"method", c.Request().Method,
		"path", c.Path(),
	)

	return http.StatusInternalServerError, "internal server error"
}
