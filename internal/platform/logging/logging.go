package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// New builds the process logger: human readable in dev, JSON lines otherwise.
func New(mode, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if mode == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Middleware tags every request with an ID, puts a request scoped logger on
// the request context and writes one access log line when the handler returns.
func Middleware(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = ulid.Make().String()
		}
		c.Set(ctxRequestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		l := base.With().Str("request_id", rid).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = l.Error()
		case status >= 400:
			e = l.Warn()
		default:
			e = l.Info()
		}
		if len(c.Errors) > 0 {
			e = e.Str("error", c.Errors.String())
		}
		e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// RequestID returns the ID assigned by Middleware, or "" outside of it.
func RequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
