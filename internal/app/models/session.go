package models

import "time"

// Session is what the dashboard keeps per browser: the signed-in identity and
// the instant the login happened. LoginTime is zero when never recorded.
type Session struct {
	User      User
	LoginTime time.Time
}

func (s Session) HasLoginTime() bool {
	return !s.LoginTime.IsZero()
}

const (
	SessionEventUpdated = "updated"
	SessionEventCleared = "cleared"
)

// SessionEvent is broadcast to every connection bound to the same browser
// session whenever one of its slots changes.
type SessionEvent struct {
	Type string   `json:"type"`
	Keys []string `json:"keys"`
}

// Identity is the gated caller attached to a request once access is allowed.
// Role holds the canonical role name.
type Identity struct {
	SessionID string
	User      User
	Role      string
	LoginTime time.Time
}
