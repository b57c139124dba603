package web

import (
	"net/http"
	"time"

	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const decisionKey = "esimdash.decision"

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		default:
			logger.Debug("request", fields...)
		}
	}
}

// guard routes the request path through view.Resolve, redirecting with 302
// or passing the page to render down the chain.
func (s *Server) guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := view.Resolve(c.Request.URL.Path, s.store(c))
		if !d.Redirect.IsZero() {
			c.Redirect(http.StatusFound, d.Redirect.To)
			c.Abort()
			return
		}
		c.Set(decisionKey, d)
		c.Next()
	}
}

// requireToken protects non-page routes: without a token the browser is sent
// to the login page.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if d := view.Resolve(view.PathDashboard, s.store(c)); !d.Redirect.IsZero() {
			c.Redirect(http.StatusFound, d.Redirect.To)
			c.Abort()
			return
		}
		c.Next()
	}
}
