package view

import (
	"context"
	"fmt"

	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/esimdash/esimdash-cli/internal/session"
	"go.uber.org/zap"
)

// Authenticator exchanges credentials for a session token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

// LoginForm holds the credentials while the form is being filled in.
type LoginForm struct {
	Username string
	Password string
}

// Update sets the field named by an input's name attribute.
func (f *LoginForm) Update(name, value string) {
	switch name {
	case "username":
		f.Username = value
	case "password":
		f.Password = value
	}
}

type LoginView struct {
	Form    LoginForm
	Error   string
	Loading bool

	auth   Authenticator
	store  session.Store
	logger *zap.Logger
}

func NewLoginView(auth Authenticator, store session.Store, logger *zap.Logger) *LoginView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginView{auth: auth, store: store, logger: logger}
}

// ButtonLabel is the submit button text for the current state.
func (v *LoginView) ButtonLabel() string {
	if v.Loading {
		return "Logging in..."
	}
	return "Login"
}

// Submit sends the form and, on success, stores the token and asks for the
// dashboard. On failure the error text is kept on the view.
func (v *LoginView) Submit(ctx context.Context) Navigation {
	v.Error = ""
	v.Loading = true
	defer func() { v.Loading = false }()

	res, err := v.auth.Login(ctx, v.Form.Username, v.Form.Password)
	if err != nil {
		v.fail(err)
		return Navigation{}
	}
	if err := v.store.Set(res.Token()); err != nil {
		v.fail(fmt.Errorf("failed to save token: %w", err))
		return Navigation{}
	}

	v.logger.Info("login successful", zap.String("username", v.Form.Username))
	v.Form.Password = ""
	return NavigateTo(PathDashboard)
}

func (v *LoginView) fail(err error) {
	v.Error = err.Error()
	if v.Error == "" {
		v.Error = "Login failed"
	}
	v.logger.Warn("login failed", zap.String("username", v.Form.Username), zap.Error(err))
}
