package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skindrop/internal/models"
	"skindrop/internal/services"
	"skindrop/internal/storage"
)

// WithdrawalHandler обрабатывает пользовательские заявки на вывод.
type WithdrawalHandler struct {
	withdrawalService services.WithdrawalService
}

// NewWithdrawalHandler создаёт новый handler.
func NewWithdrawalHandler(withdrawalService services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// Request обрабатывает POST /api/withdraw.
func (h *WithdrawalHandler) Request(c echo.Context) error {
	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	_, err := h.withdrawalService.Request(c.Request().Context(), req.ExternalID, req.InventoryItemID, req.DestinationAddress)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrEmptyTradeAddress):
			return echo.NewHTTPError(http.StatusBadRequest, "destinationAddress is required")
		case errors.Is(err, storage.ErrInventoryItemNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Inventory item not found")
		case errors.Is(err, storage.ErrItemNotAvailable):
			return echo.NewHTTPError(http.StatusBadRequest, "Item is not available for withdrawal")
		default:
			c.Logger().Errorf("failed to create withdrawal: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Withdrawal request created. Admin will process the trade offer.",
	})
}
