package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsPort records per-request counters and latency for the
// registration and lookup endpoints.
type MetricsPort interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(name string, duration time.Duration, labels map[string]string)
	RecordMetrics(c *gin.Context, start time.Time)
}
