package view

import (
	"context"
	"errors"
	"testing"

	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/esimdash/esimdash-cli/internal/session"
	"github.com/esimdash/esimdash-cli/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	session.MemoryStore
	err error
}

func (s *failingStore) Set(string) error { return s.err }
func (s *failingStore) Clear() error     { return s.err }

func Test_LoginForm_Update(t *testing.T) {
	var f LoginForm
	f.Update("username", "admin")
	f.Update("password", "pw")
	f.Update("remember", "yes")

	assert.Equal(t, LoginForm{Username: "admin", Password: "pw"}, f)
}

func Test_LoginView_Submit(t *testing.T) {
	errUnitTest := errors.New("expected unit test error")

	tests := []struct {
		name      string
		api       func(*mocks.API)
		store     session.Store
		wantNav   Navigation
		wantToken string
		wantError string
	}{
		{
			name: "success stores token and navigates",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(&models.LoginResponse{AccessToken: "T"}, nil)
			},
			store:     session.NewMemoryStore(""),
			wantNav:   NavigateTo("/dashboard"),
			wantToken: "T",
		},
		{
			name: "token is stored as issued",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(&models.LoginResponse{AccessToken: " T "}, nil)
			},
			store:     session.NewMemoryStore(""),
			wantNav:   NavigateTo("/dashboard"),
			wantToken: " T ",
		},
		{
			name: "rejected credentials show the service detail",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(nil, &api.CredentialsError{Detail: "Invalid dashboard credentials"})
			},
			store:     session.NewMemoryStore(""),
			wantError: "Invalid dashboard credentials",
		},
		{
			name: "api error is shown",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(nil, errUnitTest)
			},
			store:     session.NewMemoryStore(""),
			wantError: "expected unit test error",
		},
		{
			name: "empty error message falls back",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(nil, errors.New(""))
			},
			store:     session.NewMemoryStore(""),
			wantError: "Login failed",
		},
		{
			name: "store failure is shown",
			api: func(a *mocks.API) {
				a.EXPECT().Login(mock.Anything, "admin", "pw").Return(&models.LoginResponse{AccessToken: "T"}, nil)
			},
			store:     &failingStore{err: errUnitTest},
			wantError: "failed to save token: expected unit test error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := mocks.NewAPI(t)
			test.api(a)

			v := NewLoginView(a, test.store, zap.NewNop())
			v.Error = "previous error"
			v.Form.Update("username", "admin")
			v.Form.Update("password", "pw")

			nav := v.Submit(context.Background())

			assert.Equal(t, test.wantNav, nav)
			assert.Equal(t, test.wantError, v.Error)
			assert.False(t, v.Loading)
			assert.Equal(t, "Login", v.ButtonLabel())

			if test.wantToken != "" {
				token, err := test.store.Get()
				require.NoError(t, err)
				assert.Equal(t, test.wantToken, token)
				assert.Empty(t, v.Form.Password)
			}
		})
	}
}

func Test_LoginView_loadingWhileInFlight(t *testing.T) {
	a := mocks.NewAPI(t)
	v := NewLoginView(a, session.NewMemoryStore(""), nil)

	a.EXPECT().Login(mock.Anything, "", "").Return(nil, errors.New("boom")).Run(func(args mock.Arguments) {
		assert.True(t, v.Loading)
		assert.Equal(t, "Logging in...", v.ButtonLabel())
	})

	v.Submit(context.Background())
	assert.False(t, v.Loading)
}
