// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"onduty/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler   *handler.SearchHandler
	FacilityHandler *handler.FacilityHandler
	GeocodeHandler  *handler.GeocodeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler   *handler.SearchHandler
	facilityHandler *handler.FacilityHandler
	geocodeHandler  *handler.GeocodeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:   params.SearchHandler,
		facilityHandler: params.FacilityHandler,
		geocodeHandler:  params.GeocodeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/nearby", r.searchHandler.SearchNearby)
		apiGroup.GET("/region", r.searchHandler.SearchRegion)
		apiGroup.GET("/facilities/:id", r.facilityHandler.GetFacility)

		geocodeGroup := apiGroup.Group("/geocode")
		geocodeGroup.GET("/forward", r.geocodeHandler.Forward)
		geocodeGroup.GET("/reverse", r.geocodeHandler.Reverse)
	}
}
