package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmapi/pkg/metrics"
)

// Metrics records request counts and latencies labelled by route template,
// so /get_crop/1 and /get_crop/2 share a series.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.IncInFlight()
			defer m.DecInFlight()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))
			return nil
		}
	}
}
