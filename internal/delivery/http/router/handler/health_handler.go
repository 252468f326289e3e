package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	ping postgres.PingFunc
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(ping postgres.PingFunc) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check handles the health probe. The response is never cacheable. A probe
// that carries a payload is malformed.
func (h *HealthHandler) Check(c echo.Context) error {
	header := c.Response().Header()
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")

	// A negative ContentLength is a chunked body of unknown size.
	if c.Request().ContentLength != 0 {
		return response.BadRequest(c, "UNEXPECTED_PAYLOAD", "health check takes no request body")
	}

	if err := h.ping(c.Request().Context()); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
