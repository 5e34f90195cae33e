package handler

import (
	"log/slog"
	"net/http"

	"onduty/internal/delivery/http/response"
	"onduty/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// GeocodeHandler holds dependencies for geocoding handlers
type GeocodeHandler struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

// ForwardRequest represents the query parameters for forward geocoding
type ForwardRequest struct {
	City     string `query:"city" validate:"required"`
	District string `query:"district" validate:"required"`
}

// ReverseRequest represents the query parameters for reverse geocoding
type ReverseRequest struct {
	Latitude  float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude float64 `query:"lon" validate:"min=-180,max=180"`
}

// Forward resolves a city/district pair to a coordinate
func (h *GeocodeHandler) Forward(c echo.Context) error {
	var req ForwardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geocode input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.geocoder.Forward(c.Request().Context(), req.City, req.District)
	if err != nil {
		h.logger.Warn("forward geocoding failed", slog.String("error", err.Error()))

		return response.BadGateway(c, "GEOCODE_UNAVAILABLE", "Geocoding service is unavailable")
	}
	if location == nil {
		return response.NotFound(c, "REGION_NOT_FOUND", "No coordinate found for the given region")
	}

	return response.Success(c, http.StatusOK, location, "Region resolved successfully")
}

// Reverse resolves a coordinate to its administrative division
func (h *GeocodeHandler) Reverse(c echo.Context) error {
	var req ReverseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geocode input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	region, err := h.geocoder.Reverse(c.Request().Context(), req.Latitude, req.Longitude)
	if err != nil {
		h.logger.Warn("reverse geocoding failed", slog.String("error", err.Error()))

		return response.BadGateway(c, "GEOCODE_UNAVAILABLE", "Geocoding service is unavailable")
	}
	if region == nil {
		return response.NotFound(c, "REGION_NOT_FOUND", "No region found for the given coordinate")
	}

	return response.Success(c, http.StatusOK, region, "Coordinate resolved successfully")
}
