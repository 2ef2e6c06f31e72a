package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/accounts"
)

// AccountHandler handles HTTP requests for authentication and driver
// accounts
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// Login handles credential checks and token issuance
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		return h.mapAccountError(c, err, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// Logout handles session revocation
func (h *AccountHandler) Logout(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	if err := h.accountUC.Logout(c.Request().Context(), caller); err != nil {
		return h.mapAccountError(c, err, "Failed to log out")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// CreateDriver handles driver onboarding by staff
func (h *AccountHandler) CreateDriver(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "a valid email is required")
	}
	if len(req.Password) < 8 {
		return utils.BadRequestResponse(c, "password must be at least 8 characters")
	}
	if req.FullName == "" {
		return utils.BadRequestResponse(c, "fullName is required")
	}

	driver, err := h.accountUC.CreateDriver(c.Request().Context(), caller, req)
	if err != nil {
		return h.mapAccountError(c, err, "Failed to create driver")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver created", driver)
}

// ListDrivers handles the staff driver roster read
func (h *AccountHandler) ListDrivers(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	resp, err := h.accountUC.ListDrivers(c.Request().Context(), caller)
	if err != nil {
		return h.mapAccountError(c, err, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved", resp)
}

// GetDriver handles the driver profile read
func (h *AccountHandler) GetDriver(c echo.Context) error {
	driverUID := c.Param("uid")
	if driverUID == "" {
		return utils.BadRequestResponse(c, "Invalid driver UID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	driver, err := h.accountUC.GetDriver(c.Request().Context(), caller, driverUID)
	if err != nil {
		return h.mapAccountError(c, err, "Failed to retrieve driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved", driver)
}

// mapAccountError translates use case rejections to HTTP statuses
func (h *AccountHandler) mapAccountError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, accounts.ErrAccountDisabled):
		return utils.ForbiddenResponse(c, "Account is disabled")
	case errors.Is(err, accounts.ErrEmailTaken):
		return utils.ConflictResponse(c, "Email is already registered")
	case errors.Is(err, accounts.ErrInvalidPhone):
		return utils.BadRequestResponse(c, "Invalid phone number")
	case errors.Is(err, accounts.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	case errors.Is(err, accounts.ErrUnauthorized):
		return utils.ForbiddenResponse(c, "You are not authorized for this account")
	default:
		logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
