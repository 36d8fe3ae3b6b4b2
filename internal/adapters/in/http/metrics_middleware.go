package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"devbook/internal/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency and in-flight requests.
// The path label is the route template so that ids do not explode cardinality.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		err := next(ctx)

		path := ctx.Path()
		if path == "" {
			path = unmatchedRoute
		}

		status := ctx.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			ctx.Request().Method,
			path,
			strconv.Itoa(status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			ctx.Request().Method,
			path,
		).Observe(time.Since(start).Seconds())

		return err
	}
}
