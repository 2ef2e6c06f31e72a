package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/accounts"
	httpHandler "github.com/BidumanADT/bellwood-admin/services/accounts/handler/http"
)

// Handler wires the account HTTP handler into the router
type Handler struct {
	accountHTTP *httpHandler.AccountHandler
	cfg         *models.Config
}

// NewHandler creates the account handler
func NewHandler(accountUC accounts.AccountUC, cfg *models.Config) *Handler {
	return &Handler{
		accountHTTP: httpHandler.NewAccountHandler(accountUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth and driver routes. Login sits
// outside the auth middleware but behind the credential rate limiter.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, loginLimiter echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/login", h.accountHTTP.Login, loginLimiter)
	authGroup.POST("/logout", h.accountHTTP.Logout, auth)

	driverGroup := v1.Group("/drivers", auth)
	driverGroup.POST("", h.accountHTTP.CreateDriver, middleware.RequireStaff())
	driverGroup.GET("", h.accountHTTP.ListDrivers, middleware.RequireStaff())
	driverGroup.GET("/:uid", h.accountHTTP.GetDriver)
}
