package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RAG call outcomes.
const (
	RagSuccess = "success"
	RagTimeout = "timeout"
	RagError   = "error"
)

var (
	// Registry holds the service collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "maverik",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "maverik",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "maverik",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	ragCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "maverik",
			Subsystem: "rag",
			Name:      "calls_total",
			Help:      "Calls to the RAG service by outcome.",
		},
		[]string{"outcome"},
	)

	ragDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "maverik",
			Subsystem: "rag",
			Name:      "call_duration_seconds",
			Help:      "Duration of RAG service calls.",
			// RAG answers take seconds, up to the configured timeout
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"outcome"},
	)

	turns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "maverik",
			Subsystem: "copilot",
			Name:      "turns_total",
			Help:      "Chat turns by relay state.",
		},
		[]string{"state"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ragCalls,
		ragDuration,
		turns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		path := utils.CopyString(c.Route().Path)
		if path == "" || (path == "/" && c.Path() != "/") {
			path = "unmatched"
		}
		method := strings.ToUpper(utils.CopyString(c.Method()))

		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

func RecordRagCall(outcome string, duration time.Duration) {
	ragCalls.WithLabelValues(outcome).Inc()
	ragDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func RecordTurn(state string) {
	turns.WithLabelValues(state).Inc()
}
