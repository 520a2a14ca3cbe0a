// Package middleware provides HTTP middleware for the gin router.
package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gotvmovies/pkg/logger"
)

// skipCompression lists paths served uncompressed. The Prometheus
// handler negotiates its own encoding.
var skipCompression = map[string]bool{
	"/metrics": true,
}

// Gzip compresses responses for clients that accept it.
func Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipCompression[c.Request.URL.Path] ||
			!strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gz := gzip.NewWriter(c.Writer)
		defer gz.Close()

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")
		c.Writer = &gzipResponseWriter{ResponseWriter: c.Writer, writer: gz}
		c.Next()
	}
}

type gzipResponseWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipResponseWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

// CORS allows cross-origin requests so the JSON endpoints can back
// other frontends.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept-Language")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Logger logs each request with method, path, status and latency. The
// level follows the response status.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		latency := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= http.StatusInternalServerError:
			log.Errorf("[HTTP] %s %s -> %d (%v)", c.Request.Method, path, status, latency)
		case status >= http.StatusBadRequest:
			log.Warnf("[HTTP] %s %s -> %d (%v)", c.Request.Method, path, status, latency)
		default:
			log.Infof("[HTTP] %s %s -> %d (%v)", c.Request.Method, path, status, latency)
		}
	}
}
