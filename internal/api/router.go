package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// NewRouter wires middleware and routes. templatesGlob may be empty when
// the HTML page is not needed (tests exercise the JSON surface only).
func NewRouter(h *Handler, templatesGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger())

	if templatesGlob != "" {
		router.LoadHTMLGlob(templatesGlob)
		router.GET("/", h.Index)
	}

	router.GET("/health", h.Health)
	router.POST("/api/bio", h.GenerateBio)
	router.POST("/api/project", h.GenerateProject)

	return router
}

// RequestID tags every request with a fresh ID, echoed back in the
// X-Request-ID header and attached to log entries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs one structured entry per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			requestIDKey:  c.GetString(requestIDKey),
		}).Info("request handled")
	}
}
