// Package session holds the single session token slot shared by the guard,
// the login view and the dashboard view.
package session

import "errors"

// TokenKey is the well-known name of the token slot.
const TokenKey = "token"

var ErrNoToken = errors.New("please login first (no token found)")

// Store is the token slot. Get returns ErrNoToken when the slot is empty.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// Present reports whether the store currently holds a token. Read errors
// count as absent.
func Present(s Store) bool {
	token, err := s.Get()
	return err == nil && token != ""
}
