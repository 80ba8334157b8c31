// Package guard gates screen access by session presence and role. The
// decision is never cached; it is re-evaluated on every guarded navigation.
package guard

import (
	"github.com/letsdodifferent/HCLTech/internal/model"
)

// Client-visible routes.
const (
	RouteHome         = "/"
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteHealthInfo   = "/health-info"
	RouteDashboard    = "/patient/dashboard"
	RouteProfile      = "/patient/profile"
	RouteTracker      = "/patient/tracker"
	RouteProviderHome = "/provider/dashboard"
)

// Session is the slice of the session manager the guard needs.
type Session interface {
	Current() *model.User
}

// Decision is the result of a guarded navigation.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Check gates access. No session redirects to login; a role mismatch
// redirects home.
func Check(sess Session, requiredRole string) Decision {
	user := sess.Current()
	if user == nil {
		return Decision{Redirect: RouteLogin}
	}
	if requiredRole != "" && user.Role != requiredRole {
		return Decision{Redirect: RouteHome}
	}
	return Decision{Allowed: true}
}
