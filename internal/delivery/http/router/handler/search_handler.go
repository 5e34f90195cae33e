package handler

import (
	"log/slog"
	"net/http"

	"onduty/internal/delivery/http/response"
	"onduty/internal/domain/entity"
	domainerrors "onduty/internal/domain/errors"
	"onduty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for search-related handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// NearbyRequest represents the query parameters for a radius search
type NearbyRequest struct {
	Latitude  float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude float64 `query:"lon" validate:"min=-180,max=180"`
	RadiusKm  float64 `query:"radius" validate:"omitempty,gt=0"`
	Category  string  `query:"category" validate:"required,oneof=pharmacy hospital"`
	OpenOnly  bool    `query:"open_only"`
	Limit     int     `query:"limit" validate:"omitempty,gt=0"`
}

// RegionRequest represents the query parameters for a region search
type RegionRequest struct {
	City     string `query:"city" validate:"required"`
	District string `query:"district" validate:"required"`
	Category string `query:"category" validate:"required,oneof=pharmacy hospital"`
	OpenOnly bool   `query:"open_only"`
}

// SearchNearby handles radius searches around a coordinate
func (h *SearchHandler) SearchNearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.NearbyInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		Category:  entity.Category(req.Category),
		OpenOnly:  req.OpenOnly,
		Limit:     req.Limit,
	}

	results, err := h.searchUC.SearchNearby(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Nearby facilities retrieved successfully")
}

// SearchRegion handles live registry searches for one administrative division
func (h *SearchHandler) SearchRegion(c echo.Context) error {
	var req RegionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.RegionInput{
		City:     req.City,
		District: req.District,
		Category: entity.Category(req.Category),
		OpenOnly: req.OpenOnly,
	}

	results, err := h.searchUC.SearchRegion(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Region facilities retrieved successfully")
}

// handleAppError handles application errors
func (h *SearchHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
