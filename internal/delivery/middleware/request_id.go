package middleware

import (
	"log/slog"

	deliverycontext "onduty/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID ensures every request carries an X-Request-ID and stashes a
// request-scoped logger in the context for the layers below.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			reqLogger := logger.With(slog.String("request_id", requestID))

			ctx := c.Request().Context()
			ctx = deliverycontext.WithRequestID(ctx, requestID)
			ctx = deliverycontext.WithLogger(ctx, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
