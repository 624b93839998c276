package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"backend-faq/internal/metrics"
)

func TestMetricsCountsRequests(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	app := fiber.New()
	app.Use(Metrics(m))
	app.Get("/api/faqs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
		require.NoError(t, err)
		resp.Body.Close()
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	require.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/faqs", "200")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/boom", "503")))
	require.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}
