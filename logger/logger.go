package logger

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CtxLoggerKey is how request values or stored/retrieved.
	CtxLoggerKey = "app-logger"
)

// Provider returns the logger associated with the given context.
type Provider func(ctx context.Context) ILogger

// NewLogger sets gin.Context with a new logger, with the related trace id.
// When the invocation came through a proxy that forwards a trace header,
// the header value is folded into the trace so log lines of one invocation
// can be correlated.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Amzn-Trace-Id")
	}

	if h != "" {
		if i := strings.IndexByte(h, ';'); i > 0 {
			h = h[:i]
		}

		l.trace = h
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return started.UTC().Format("20060102T150405Z") + "-" + id
}
