package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propwrite/internal/errors"
	"propwrite/internal/service"
)

// UserHandler handles current-user endpoints.
type UserHandler struct {
	userService service.UserService
	quota       *service.QuotaTracker
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, quota *service.QuotaTracker) *UserHandler {
	return &UserHandler{userService: userService, quota: quota}
}

// MeResponse represents the current user plus today's remaining generations.
type MeResponse struct {
	User                 interface{} `json:"user"`
	GenerationsRemaining int         `json:"generations_remaining"`
	GenerationsLimit     int         `json:"generations_limit"`
}

// Me godoc
// @Summary Get the authenticated user and remaining daily generations
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	remaining, err := h.quota.Remaining(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MeResponse{
		User:                 user,
		GenerationsRemaining: remaining,
		GenerationsLimit:     h.quota.Limit(),
	})
}
