package web

import (
	"net/http"
	"time"

	"github.com/esimdash/esimdash-cli/internal/session"
	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 7 * 24 * time.Hour

// cookieStore is the browser's token slot. Writes are visible to later reads
// within the same request.
type cookieStore struct {
	c       *gin.Context
	secure  bool
	pending *string
}

// ensures cookieStore implements session.Store at compile-time
var _ session.Store = (*cookieStore)(nil)

func newCookieStore(c *gin.Context, secure bool) *cookieStore {
	return &cookieStore{c: c, secure: secure}
}

func (s *cookieStore) Get() (string, error) {
	if s.pending != nil {
		if *s.pending == "" {
			return "", session.ErrNoToken
		}
		return *s.pending, nil
	}
	token, err := s.c.Cookie(session.TokenKey)
	if err != nil || token == "" {
		return "", session.ErrNoToken
	}
	return token, nil
}

func (s *cookieStore) Set(token string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(session.TokenKey, token, int(cookieMaxAge.Seconds()), "/", "", s.secure, true)
	s.pending = &token
	return nil
}

func (s *cookieStore) Clear() error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(session.TokenKey, "", -1, "/", "", s.secure, true)
	empty := ""
	s.pending = &empty
	return nil
}
