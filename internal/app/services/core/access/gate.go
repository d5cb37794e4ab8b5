package access

import "dentclinic-service/internal/pkg/constvars"

// Decision is the outcome of gating one protected view.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectExpired
	RedirectHome
	Denied
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectExpired:
		return "redirect_expired"
	case RedirectHome:
		return "redirect_home"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Location is the redirect target for the decision, empty when none.
func (d Decision) Location() string {
	switch d {
	case RedirectLogin:
		return constvars.RouteLogin
	case RedirectExpired:
		return constvars.RouteLogin + "?" + constvars.URLQueryParamTimeout
	case RedirectHome:
		return constvars.RouteDashboard
	default:
		return ""
	}
}

// Decide gates a view. It depends only on its arguments.
//
// An unrecognized role is Denied rather than sent home, because the landing
// view is itself gated and would bounce the request back.
func Decide(present, expired bool, rawRole string, allow AllowList) (Decision, Role) {
	if !present {
		return RedirectLogin, ""
	}
	if expired {
		return RedirectExpired, ""
	}
	role, ok := NormalizeRole(rawRole)
	if !ok {
		return Denied, ""
	}
	if !allow.Contains(role) {
		return RedirectHome, role
	}
	return Allow, role
}
