package handler

import (
	"log/slog"
	"net/http"

	"onduty/internal/delivery/http/response"
	domainerrors "onduty/internal/domain/errors"
	"onduty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FacilityHandlerParams holds dependencies for FacilityHandler, injected by Fx.
type FacilityHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// FacilityHandler holds dependencies for single-facility handlers
type FacilityHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewFacilityHandler is the constructor for FacilityHandler
func NewFacilityHandler(params FacilityHandlerParams) *FacilityHandler {
	return &FacilityHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// FacilityDetail is the response body for a single facility lookup
type FacilityDetail struct {
	*usecase.FacilityStatus

	WeeklyHours []string `json:"weekly_hours"`
}

// GetFacility handles retrieving one facility with its current open status
func (h *FacilityHandler) GetFacility(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Facility ID is required")
	}

	status, weeklyHours, err := h.searchUC.GetFacility(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	detail := &FacilityDetail{
		FacilityStatus: status,
		WeeklyHours:    weeklyHours,
	}

	return response.Success(c, http.StatusOK, detail, "Facility retrieved successfully")
}

// handleAppError handles application errors
func (h *FacilityHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
