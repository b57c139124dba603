// Package web serves the login and dashboard views over HTTP.
package web

import (
	"net/http"

	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/internal/session"
	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	api          api.API
	cookieSecure bool
	logger       *zap.Logger
	engine       *gin.Engine
}

type Option func(*Server)

func WithCookieSecure(secure bool) Option {
	return func(s *Server) { s.cookieSecure = secure }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

func NewServer(a api.API, opts ...Option) *Server {
	s := &Server{api: a, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(s.logger), gin.Recovery())
	r.SetHTMLTemplate(templates)

	r.GET(view.PathLogin, s.guard(), s.renderPage)
	r.POST(view.PathLogin, s.submitLogin)
	r.GET(view.PathDashboard, s.guard(), s.renderPage)
	r.GET(view.PathDashboard+"/esims", s.requireToken(), s.esimsFragment)
	r.POST("/logout", s.logout)
	r.NoRoute(s.guard(), s.renderPage)

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) store(c *gin.Context) session.Store {
	if v, ok := c.Get(session.TokenKey); ok {
		return v.(session.Store)
	}
	st := newCookieStore(c, s.cookieSecure)
	c.Set(session.TokenKey, session.Store(st))
	return st
}
