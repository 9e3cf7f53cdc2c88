package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"skindrop/internal/models"
	"skindrop/internal/services"
	"skindrop/internal/storage"
)

// UserHandler обрабатывает HTTP-запросы для работы с пользователями.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Auth обрабатывает POST /api/auth/telegram: вход по внешнему id с
// get-or-create семантикой.
func (h *UserHandler) Auth(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	user, token, err := h.userService.Authenticate(c.Request().Context(), req.ExternalID, req.DisplayName)
	if err != nil {
		if errors.Is(err, services.ErrEmptyExternalID) {
			return echo.NewHTTPError(http.StatusBadRequest, "externalId is required")
		}
		c.Logger().Errorf("failed to authenticate user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	setAuthToken(c, token)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Profile обрабатывает GET /api/users/:externalId.
func (h *UserHandler) Profile(c echo.Context) error {
	profile, err := h.userService.Profile(c.Request().Context(), c.Param("externalId"))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		c.Logger().Errorf("failed to get user profile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, profile)
}

// TopUp обрабатывает POST /api/topup.
func (h *UserHandler) TopUp(c echo.Context) error {
	var req models.TopUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	paymentID, user, err := h.userService.TopUp(c.Request().Context(), req.ExternalID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidAmount):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid top-up payload")
		default:
			c.Logger().Errorf("failed to top up balance: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Top-up accepted. Payment id %s.", paymentID),
		"user":    user,
	})
}

// setAuthToken устанавливает токен в cookie и заголовок ответа.
func setAuthToken(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     "Authorization",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 часа
	}
	c.SetCookie(cookie)

	// Также устанавливаем в заголовок для удобства
	c.Response().Header().Set("Authorization", "Bearer "+token)
}
