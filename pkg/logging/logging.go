package logging

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Configure applies level, format and output to the given logger.
// format is "json" or "text"; unknown levels fall back to info.
func Configure(logger *logrus.Logger, level, format string, out io.Writer) {
	logger.SetOutput(out)
	logger.SetLevel(ParseLevel(level))

	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
}

// ParseLevel converts a level name to a logrus level
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// FromContext returns an entry tagged with the request id, if any.
func FromContext(c *gin.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if c == nil {
		return entry
	}
	if id, ok := c.Get(RequestIDKey); ok {
		entry = entry.WithField(RequestIDKey, id)
	}
	return entry
}

// Middleware logs one line per request.
func Middleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if id, ok := c.Get(RequestIDKey); ok {
			fields[RequestIDKey] = id
		}

		entry := logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
