package handler

import (
	"articlehub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "pong!", nil)
}
