// Package transport is the HTTP surface of the ContactKeeper server: an
// Echo application exposing the auth and contact APIs under /api/v1, plus
// liveness and Prometheus endpoints at the root.
package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(users UserService, contacts ContactService, log logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newHTTPErrorHandler(log)
	e.Validator = newValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Each router gets its own registry so repeated construction never
	// trips duplicate-collector registration.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "contactkeeper",
		Registerer: registry,
	}))

	e.GET("/health", health)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))

	api := e.Group("/api/v1")
	requireAuth := bearerAuth(users)

	authHandler := NewAuthHandler(users)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/password-reset", authHandler.RequestPasswordReset)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.POST("/refresh", authHandler.Refresh, requireAuth)
	auth.POST("/logout", authHandler.Logout, requireAuth)
	auth.PUT("/password", authHandler.ChangePassword, requireAuth)

	contactHandler := NewContactHandler(contacts)
	cg := api.Group("/contacts", requireAuth)
	cg.GET("", contactHandler.List)
	cg.POST("", contactHandler.Create)
	cg.POST("/search", contactHandler.Search)
	cg.GET("/:id", contactHandler.Get)
	cg.PUT("/:id", contactHandler.Update)
	cg.DELETE("/:id", contactHandler.Delete)

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
