package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultAPIURL  = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
)

var (
	ErrUnauthorized       = errors.New("invalid token, please login")
	ErrNotFound           = errors.New("resource not found")
	ErrMissingAccessToken = errors.New("login response did not contain an access token")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// CredentialsError is returned by Login when the service rejects the
// username or password. Its text is the service's own detail message.
type CredentialsError struct {
	Detail string
}

func (e *CredentialsError) Error() string {
	if e.Detail == "" {
		return ErrInvalidCredentials.Error()
	}
	return e.Detail
}

func (e *CredentialsError) Unwrap() error { return ErrInvalidCredentials }

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type API interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ListESIMs(ctx context.Context, token string) (*models.ESIMList, error)
	GetESIM(ctx context.Context, token, esimID string) (*models.ESIMList, error)
	GetESIMLocation(ctx context.Context, token, esimID string) (*models.ESIMList, error)
	GetESIMUsage(ctx context.Context, token, esimID string, period models.UsagePeriod) (*models.ESIMList, error)
}

// ensures ESIMAPI implements API at compile-time
var _ API = (*ESIMAPI)(nil)

type APIOption func(*ESIMAPI)

func WithBaseURL(baseURL string) APIOption {
	return func(a *ESIMAPI) {
		if baseURL != "" {
			a.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithVersion(version string) APIOption {
	return func(a *ESIMAPI) {
		a.Version = version
	}
}

func WithTimeout(timeout time.Duration) APIOption {
	return func(a *ESIMAPI) {
		if timeout > 0 {
			a.client.Timeout = timeout
		}
	}
}

func WithHTTPClient(client *http.Client) APIOption {
	return func(a *ESIMAPI) {
		if client != nil {
			a.client = client
		}
	}
}

func WithLogger(logger *zap.Logger) APIOption {
	return func(a *ESIMAPI) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// ESIMAPI talks to the ESIM service. It holds no session state: every
// authenticated call takes the bearer token explicitly.
type ESIMAPI struct {
	BaseURL string
	Version string

	client *http.Client
	logger *zap.Logger
}

func NewAPI(opts ...APIOption) *ESIMAPI {
	a := &ESIMAPI{
		BaseURL: DefaultAPIURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Request performs a single HTTP call and returns the raw 2xx response body.
func (a *ESIMAPI) Request(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	statusCode, data, err := a.do(ctx, method, path, token, contentType, body)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(statusCode, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (a *ESIMAPI) do(ctx context.Context, method, path, token, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create new http request object")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if a.Version != "" {
		req.Header.Set("X-Client-Version", a.Version)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := a.logger.With(zap.String("request_id", requestID), zap.String("method", method), zap.String("path", path))

	resp, err := a.client.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to read response body")
	}
	log.Debug("api response", zap.Int("status", resp.StatusCode), zap.ByteString("body", data))

	return resp.StatusCode, data, nil
}

func checkStatus(statusCode int, data []byte) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("rate limit error: %s", string(data))
	case statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices:
		return statusError(statusCode, data)
	}
	return nil
}

func statusError(statusCode int, data []byte) error {
	var errorMessage models.ErrorMessage
	if err := json.Unmarshal(data, &errorMessage); err != nil || errorMessage.Detail == "" {
		if len(data) == 0 {
			return fmt.Errorf("api returned a non 2xx status code (%d)", statusCode)
		}
		return fmt.Errorf("api returned a non 2xx status code (%d) with body: %s", statusCode, string(data))
	}
	return fmt.Errorf("api returned a non 2xx status code (%d) with error message: %s", statusCode, errorMessage.Detail)
}

// Login posts the credentials as a multipart form and returns the issued token.
func (a *ESIMAPI) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("username", username); err != nil {
		return nil, errors.Wrap(err, "failed to encode login form")
	}
	if err := form.WriteField("password", password); err != nil {
		return nil, errors.Wrap(err, "failed to encode login form")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode login form")
	}

	statusCode, data, err := a.do(ctx, http.MethodPost, "/login", "", form.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusUnauthorized {
		var errorMessage models.ErrorMessage
		_ = json.Unmarshal(data, &errorMessage)
		return nil, &CredentialsError{Detail: errorMessage.Detail}
	}
	if err := checkStatus(statusCode, data); err != nil {
		return nil, err
	}

	var loginResponse models.LoginResponse
	if err := json.Unmarshal(data, &loginResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode login response")
	}
	if loginResponse.Token() == "" {
		return nil, ErrMissingAccessToken
	}

	return &loginResponse, nil
}

func (a *ESIMAPI) ListESIMs(ctx context.Context, token string) (*models.ESIMList, error) {
	return a.getList(ctx, token, "/esims")
}

func (a *ESIMAPI) GetESIM(ctx context.Context, token, esimID string) (*models.ESIMList, error) {
	return a.getList(ctx, token, "/esims/"+url.PathEscape(esimID))
}

func (a *ESIMAPI) GetESIMLocation(ctx context.Context, token, esimID string) (*models.ESIMList, error) {
	return a.getList(ctx, token, "/esims/"+url.PathEscape(esimID)+"/location")
}

func (a *ESIMAPI) GetESIMUsage(ctx context.Context, token, esimID string, period models.UsagePeriod) (*models.ESIMList, error) {
	path := "/esims/" + url.PathEscape(esimID) + "/usage"
	if q := period.Query(); len(q) > 0 {
		path = path + "?" + q.Encode()
	}
	return a.getList(ctx, token, path)
}

func (a *ESIMAPI) getList(ctx context.Context, token, path string) (*models.ESIMList, error) {
	data, err := a.Request(ctx, http.MethodGet, path, token, "", nil)
	if err != nil {
		return nil, err
	}

	list, err := models.DecodeESIMList(data)
	if err != nil {
		return nil, err
	}
	if list.Shape == models.ShapeUnrecognized {
		a.logger.Warn("unrecognized response shape", zap.String("path", path))
	}
	return list, nil
}
