// Package view holds the login, dashboard and routing logic shared by the
// web and terminal front ends. Views never navigate themselves; they return
// a Navigation for the host to carry out.
package view

const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Navigation is a request to move to another path. The zero value means stay.
type Navigation struct {
	To string
}

func NavigateTo(path string) Navigation {
	return Navigation{To: path}
}

func (n Navigation) IsZero() bool {
	return n.To == ""
}
