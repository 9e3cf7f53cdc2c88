package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skindrop/internal/models"
	"skindrop/internal/services"
	"skindrop/internal/storage"
)

// AdminHandler обрабатывает операции администратора: сводку, создание кейсов,
// корректировку балансов и смену статусов заявок.
type AdminHandler struct {
	adminService      services.AdminService
	caseService       services.CaseService
	userService       services.UserService
	withdrawalService services.WithdrawalService
}

// NewAdminHandler создаёт новый handler.
func NewAdminHandler(adminService services.AdminService, caseService services.CaseService, userService services.UserService, withdrawalService services.WithdrawalService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		caseService:       caseService,
		userService:       userService,
		withdrawalService: withdrawalService,
	}
}

// Overview обрабатывает GET /api/admin/overview.
func (h *AdminHandler) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, h.adminService.Overview(c.Request().Context()))
}

// CreateCase обрабатывает POST /api/admin/cases.
func (h *AdminHandler) CreateCase(c echo.Context) error {
	var req models.CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	caseID, err := h.caseService.Create(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCaseName), errors.Is(err, services.ErrNoCaseItems):
			return echo.NewHTTPError(http.StatusBadRequest, "Case name and at least one item are required")
		default:
			c.Logger().Errorf("failed to create case: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Case created",
		"caseId":  caseID,
	})
}

// AdjustBalance обрабатывает POST /api/admin/balance.
func (h *AdminHandler) AdjustBalance(c echo.Context) error {
	var req models.AdjustBalanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	user, err := h.userService.AdjustBalance(c.Request().Context(), req.ExternalID, req.CoinsDelta)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		c.Logger().Errorf("failed to adjust balance: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Balance updated",
		"user":    user,
	})
}

// SetWithdrawalStatus обрабатывает POST /api/admin/withdrawals/:id/status.
func (h *AdminHandler) SetWithdrawalStatus(c echo.Context) error {
	var req models.WithdrawalStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	err := h.withdrawalService.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		case errors.Is(err, storage.ErrWithdrawalNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Withdrawal not found")
		default:
			c.Logger().Errorf("failed to update withdrawal status: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Withdrawal status updated",
	})
}
