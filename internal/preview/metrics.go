package preview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the preview server collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	res := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apidocs",
				Subsystem: "preview",
				Name:      "requests_total",
				Help:      "Total number of preview requests",
			},
			[]string{"route", "status"},
		),
	}
	res.Registry.MustRegister(res.Requests)
	return res
}

// middleware counts every request by route template and status code.
func (m *Metrics) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		return err
	}
}
