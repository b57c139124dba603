package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/esimdash/esimdash-cli/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tokenCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "token", Value: token}
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func Test_Guard(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		token        string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "login renders", path: "/login", wantStatus: http.StatusOK, wantBody: "ESIM Dashboard Login"},
		{name: "dashboard without token", path: "/dashboard", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "dashboard with token", path: "/dashboard", token: "T", wantStatus: http.StatusOK, wantBody: "Loading..."},
		{name: "unknown path", path: "/settings", wantStatus: http.StatusFound, wantLocation: "/dashboard"},
		{name: "root path", path: "/", token: "T", wantStatus: http.StatusFound, wantLocation: "/dashboard"},
		{name: "fragment without token", path: "/dashboard/esims", wantStatus: http.StatusFound, wantLocation: "/login"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewServer(mocks.NewAPI(t))
			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.token != "" {
				req.AddCookie(tokenCookie(test.token))
			}

			rec := do(t, s, req)

			assert.Equal(t, test.wantStatus, rec.Code)
			assert.Equal(t, test.wantLocation, rec.Header().Get("Location"))
			assert.Contains(t, rec.Body.String(), test.wantBody)
		})
	}
}

func Test_Login(t *testing.T) {
	postLogin := func() *http.Request {
		form := url.Values{"username": {"admin"}, "password": {"pw"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("success sets cookie and redirects", func(t *testing.T) {
		a := mocks.NewAPI(t)
		a.EXPECT().Login(mock.Anything, "admin", "pw").Return(&models.LoginResponse{AccessToken: "T"}, nil)

		rec := do(t, NewServer(a, WithCookieSecure(true)), postLogin())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		c := findCookie(rec, "token")
		require.NotNil(t, c)
		assert.Equal(t, "T", c.Value)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, 7*24*60*60, c.MaxAge)
	})

	t.Run("failure renders error", func(t *testing.T) {
		a := mocks.NewAPI(t)
		a.EXPECT().Login(mock.Anything, "admin", "pw").Return(nil, errors.New("incorrect username or password"))

		rec := do(t, NewServer(a), postLogin())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, findCookie(rec, "token"))
		body := rec.Body.String()
		assert.Contains(t, body, "color: red")
		assert.Contains(t, body, "incorrect username or password")
		assert.Contains(t, body, `value="admin"`)
		assert.Contains(t, body, ">Login</button>")
	})

	t.Run("rejected credentials show the service detail", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid dashboard credentials"}`))
		}))
		t.Cleanup(upstream.Close)

		rec := do(t, NewServer(api.NewAPI(api.WithBaseURL(upstream.URL))), postLogin())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, findCookie(rec, "token"))
		body := rec.Body.String()
		assert.Contains(t, body, "Invalid dashboard credentials")
		assert.NotContains(t, body, "please login")
	})
}

func Test_ESIMsFragment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		want     []string
		wantNone []string
	}{
		{
			name:     "table",
			body:     `{"data":[{"iccid":"8901","status":"active"},{"iccid":"8902","status":"idle"}]}`,
			want:     []string{"<th>iccid</th><th>status</th>", "<td>8901</td><td>active</td>", "<td>8902</td><td>idle</td>"},
			wantNone: []string{"Loading...", "No ESIMs found"},
		},
		{
			name:     "empty",
			body:     `[]`,
			want:     []string{"No ESIMs found"},
			wantNone: []string{"<table"},
		},
		{
			name:     "error",
			err:      errors.New("connection refused"),
			want:     []string{"color: red", "Failed to load ESIMs: connection refused"},
			wantNone: []string{"Loading...", "<table"},
		},
		{
			name: "values are escaped",
			body: `[{"note":"<b>x</b>"}]`,
			want: []string{"<td>&lt;b&gt;x&lt;/b&gt;</td>"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := mocks.NewAPI(t)
			var list *models.ESIMList
			if test.err == nil {
				var err error
				list, err = models.DecodeESIMList([]byte(test.body))
				require.NoError(t, err)
			}
			a.EXPECT().ListESIMs(mock.Anything, "T").Return(list, test.err)

			req := httptest.NewRequest(http.MethodGet, "/dashboard/esims", nil)
			req.AddCookie(tokenCookie("T"))
			rec := do(t, NewServer(a), req)

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, s := range test.want {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range test.wantNone {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}

func Test_Logout(t *testing.T) {
	s := NewServer(mocks.NewAPI(t))
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(tokenCookie("T"))

	rec := do(t, s, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	c := findCookie(rec, "token")
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)

	// browser dropped the cookie, so the dashboard goes back to login
	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func Test_Logout_getKeepsSession(t *testing.T) {
	s := NewServer(mocks.NewAPI(t))
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(tokenCookie("T"))

	rec := do(t, s, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Nil(t, findCookie(rec, "token"))
}
