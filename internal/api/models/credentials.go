package models

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// Token returns the access token exactly as issued.
func (r *LoginResponse) Token() string {
	if r == nil {
		return ""
	}
	return r.AccessToken
}

// ErrorMessage is the error body returned by the ESIM service.
type ErrorMessage struct {
	Detail string `json:"detail,omitempty"`
}
