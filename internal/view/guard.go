package view

import "github.com/esimdash/esimdash-cli/internal/session"

// Page is a view the router can render.
type Page int

const (
	PageNone Page = iota
	PageLogin
	PageDashboard
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageDashboard:
		return "dashboard"
	default:
		return "none"
	}
}

// Decision is the outcome of routing a path: either render a page or
// redirect elsewhere, never both.
type Decision struct {
	Render   Page
	Redirect Navigation
}

// Resolve routes path based on the presence of a session token.
//
//	/login     -> login
//	/dashboard -> dashboard with a token, otherwise redirect to /login
//	*          -> redirect to /dashboard
func Resolve(path string, store session.Store) Decision {
	switch path {
	case PathLogin:
		return Decision{Render: PageLogin}
	case PathDashboard:
		if !session.Present(store) {
			return Decision{Redirect: NavigateTo(PathLogin)}
		}
		return Decision{Render: PageDashboard}
	default:
		return Decision{Redirect: NavigateTo(PathDashboard)}
	}
}

// Follow resolves path and follows redirects until a page renders, returning
// the page and every path visited on the way.
func Follow(path string, store session.Store) (Page, []string) {
	visited := []string{path}
	for i := 0; i < 4; i++ {
		d := Resolve(path, store)
		if d.Redirect.IsZero() {
			return d.Render, visited
		}
		path = d.Redirect.To
		visited = append(visited, path)
	}
	return PageNone, visited
}
