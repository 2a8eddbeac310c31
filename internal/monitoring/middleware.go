package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		reqSize := c.Request.ContentLength
		if reqSize < 0 {
			reqSize = 0
		}

		c.Next()

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		respSize := int64(c.Writer.Size())

		metrics.RecordHTTPRequest(method, path, status, duration, reqSize, respSize)
	}
}

// Timer measures one extraction call.
type Timer struct {
	start   time.Time
	metrics *Metrics
	engine  string
}

// NewTimer starts a timer for an extraction call.
func NewTimer(metrics *Metrics, engine string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, engine: engine}
}

// Stop stops the timer and records the call with the given status.
func (t *Timer) Stop(status string) {
	t.metrics.RecordExtraction(t.engine, status, time.Since(t.start))
}
