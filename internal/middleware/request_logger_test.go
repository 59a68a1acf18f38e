package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	previous := logger.Log
	logger.Log = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { logger.Log = previous })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/eleves/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/api/v1/stats/recouvrements", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve := func(path string) string {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
		return buf.String()
	}

	assert.Empty(t, serve("/api/v1/health"))

	out := serve("/api/v1/eleves/9")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "route=/api/v1/eleves/:id")

	out = serve("/api/v1/stats/recouvrements?annee=2024-2025")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `query="annee=2024-2025"`)
	assert.NotContains(t, out, "route=")
}
