package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestConfigureFormat(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer

	Configure(logger, "debug", "json", &buf)
	logger.WithField("podcast_id", 3).Info("hello")
	assert.Contains(t, buf.String(), `"podcast_id":3`)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	buf.Reset()
	Configure(logger, "info", "text", &buf)
	logger.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(RequestIDKey, "req-1")
		c.Next()
	})
	router.Use(Middleware(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "req-1", hook.LastEntry().Data[RequestIDKey])
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Len(t, hook.Entries, 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
