package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"filmorate/internal/filmorate/observability"
)

// NewMetricsMiddleware считает запросы и их длительность по шаблону маршрута.
func NewMetricsMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		route := ctx.Route().Path
		method := ctx.Method()
		status := ctx.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		observability.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		observability.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
