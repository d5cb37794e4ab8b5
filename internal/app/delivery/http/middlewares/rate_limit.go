package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP at App.MaxRequests per second.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}
