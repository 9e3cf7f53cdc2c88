package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skindrop/internal/models"
	"skindrop/internal/services"
	"skindrop/internal/storage"
)

// CaseHandler обрабатывает каталог кейсов и их открытие.
type CaseHandler struct {
	caseService    services.CaseService
	openingService services.OpeningService
}

// NewCaseHandler создаёт новый handler.
func NewCaseHandler(caseService services.CaseService, openingService services.OpeningService) *CaseHandler {
	return &CaseHandler{
		caseService:    caseService,
		openingService: openingService,
	}
}

// List обрабатывает GET /api/cases: активные кейсы, свежие первыми.
func (h *CaseHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"cases": h.caseService.ListActive(c.Request().Context()),
	})
}

// Open обрабатывает POST /api/open-case.
func (h *CaseHandler) Open(c echo.Context) error {
	var req models.OpenCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	result, err := h.openingService.Open(c.Request().Context(), req.ExternalID, req.CaseID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound), errors.Is(err, storage.ErrCaseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User or case not found")
		case errors.Is(err, storage.ErrInsufficientBalance):
			return echo.NewHTTPError(http.StatusBadRequest, "Insufficient coins balance")
		default:
			c.Logger().Errorf("failed to open case: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Case opened successfully",
		"reward":        result.Reward,
		"inventoryItem": result.Item,
		"user":          result.User,
	})
}
