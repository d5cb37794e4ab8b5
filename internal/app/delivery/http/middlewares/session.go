package middlewares

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/access"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/exceptions"
	"dentclinic-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SessionCookie resolves the browser session id from the signed cookie. A
// missing or invalid cookie leaves the request without a session id.
func (m *Middlewares) SessionCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := utils.ParseSessionJWT(cookie.Value, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Debug("Ignoring invalid session cookie",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects requests that carry no session id at all.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetSessionID(r.Context()) == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles gates a view on the persisted session and the allowed roles.
// Unknown entries in allowed are ignored.
func (m *Middlewares) RequireRoles(allowed ...string) func(http.Handler) http.Handler {
	allowList := access.NewAllowList(allowed...)
	return m.gate(allowList)
}

// RequireAnyRole admits every recognized role.
func (m *Middlewares) RequireAnyRole() func(http.Handler) http.Handler {
	return m.gate(access.AnyRecognizedRole())
}

func (m *Middlewares) gate(allowList access.AllowList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := utils.GetRequestID(r.Context())
			sessionID := utils.GetSessionID(r.Context())

			ctx, cancel := context.WithTimeout(r.Context(), m.checkTimeout())
			state, err := m.Sessions.Check(ctx, sessionID)
			cancel()
			if err != nil {
				m.Log.Error("Failed to resolve session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.Error(err),
				)
				if errors.Is(err, context.DeadlineExceeded) {
					utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
					return
				}
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			decision, role := access.Decide(state.Present, state.Expired, state.Session.User.Role, allowList)
			m.Log.Debug("Access decision",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRoleKey, state.Session.User.Role),
				zap.String(constvars.LoggingDecisionKey, decision.String()),
			)

			switch decision {
			case access.Allow:
				identity := models.Identity{
					SessionID: sessionID,
					User:      state.Session.User,
					Role:      string(role),
					LoginTime: state.Session.LoginTime,
				}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)))
			case access.Denied:
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotRecognized(nil))
			default:
				http.Redirect(w, r, decision.Location(), redirectStatus(r.Method))
			}
		})
	}
}

func (m *Middlewares) checkTimeout() time.Duration {
	if m.InternalConfig != nil && m.InternalConfig.App.RequestTimeoutInSeconds > 0 {
		return time.Duration(m.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return 10 * time.Second
}

// redirectStatus keeps GET as GET and turns writes into a GET of the target.
func redirectStatus(method string) int {
	if method == constvars.MethodGet {
		return constvars.StatusFound
	}
	return constvars.StatusSeeOther
}
