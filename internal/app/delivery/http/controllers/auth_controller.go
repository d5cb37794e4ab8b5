package controllers

import (
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/access"
	"dentclinic-service/internal/app/services/core/session"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"
	"dentclinic-service/internal/pkg/dto/responses"
	"dentclinic-service/internal/pkg/exceptions"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultEventsHeartbeat = 25 * time.Second
	eventLogout            = "logout"
	eventSession           = "session"
)

type AuthController struct {
	Log            *zap.Logger
	Sessions       *session.Manager
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, sessions *session.Manager, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	if err := utils.DecodeRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionID := ctrl.sessionIDFor(r)

	ctx, cancel := requestContext(r, ctrl.timeout())
	defer cancel()

	result, err := ctrl.Sessions.Login(ctx, sessionID, request.Username, request.Password)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	if err := ctrl.issueCookie(w, sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, loginResponse(result))
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	if err := utils.DecodeRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionID := ctrl.sessionIDFor(r)

	ctx, cancel := requestContext(r, ctrl.timeout())
	defer cancel()

	result, err := ctrl.Sessions.Register(ctx, sessionID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	if err := ctrl.issueCookie(w, sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, loginResponse(result))
}

// Logout clears the session slots and the cookie. It succeeds without a
// session so that a stale tab can always log out.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := utils.GetSessionID(r.Context())
	if sessionID != "" {
		ctx, cancel := requestContext(r, ctrl.timeout())
		defer cancel()

		if err := ctrl.Sessions.Logout(ctx, sessionID); err != nil {
			respondError(ctrl.Log, w, err)
			return
		}
	}

	utils.ClearSessionCookie(w, ctrl.secureCookie())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, responses.SessionEvent{
		Type:     eventLogout,
		Redirect: constvars.RouteLogin,
	})
}

// Current returns the signed-in identity without touching loginTime.
func (ctrl *AuthController) Current(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.timeout())
	defer cancel()

	result, ok, err := ctrl.Sessions.Current(ctx, utils.GetSessionID(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(nil))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionResolved, loginResponse(result))
}

// Events streams session changes made by other tabs of the same browser as
// server-sent events. A cleared currentUser ends the stream with a logout
// event carrying the login route.
func (ctrl *AuthController) Events(w http.ResponseWriter, r *http.Request) {
	sessionID := utils.GetSessionID(r.Context())
	requestID := utils.GetRequestID(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrStreamingUnsupported(nil))
		return
	}

	events, unsubscribe, err := ctrl.Sessions.Events(r.Context(), sessionID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	defer unsubscribe()

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextEventStream)
	w.Header().Set(constvars.HeaderCacheControl, "no-cache")
	w.Header().Set(constvars.HeaderConnection, "keep-alive")
	w.WriteHeader(constvars.StatusOK)
	flusher.Flush()

	ctrl.Log.Info("AuthController.Events stream opened",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	heartbeat := time.NewTicker(ctrl.heartbeat())
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			if clearsIdentity(event) {
				writeEvent(w, eventLogout, responses.SessionEvent{Type: eventLogout, Redirect: constvars.RouteLogin})
				flusher.Flush()
				ctrl.Log.Info("AuthController.Events sent logout",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, sessionID),
				)
				return
			}
			writeEvent(w, eventSession, responses.SessionEvent{Type: event.Type})
			flusher.Flush()
		}
	}
}

func clearsIdentity(event models.SessionEvent) bool {
	if event.Type != models.SessionEventCleared {
		return false
	}
	for _, key := range event.Keys {
		if key == constvars.SessionSlotCurrentUser {
			return true
		}
	}
	return false
}

func writeEvent(w http.ResponseWriter, name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}

// sessionIDFor reuses the browser's session so other tabs stay bound to it.
func (ctrl *AuthController) sessionIDFor(r *http.Request) string {
	if sessionID := utils.GetSessionID(r.Context()); sessionID != "" {
		return sessionID
	}
	return utils.GenerateSessionID()
}

func (ctrl *AuthController) issueCookie(w http.ResponseWriter, sessionID string) error {
	token, err := utils.GenerateSessionJWT(sessionID, ctrl.InternalConfig.JWT.Secret, ctrl.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}
	lifetime := time.Duration(ctrl.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	utils.SetSessionCookie(w, token, lifetime, ctrl.secureCookie())
	return nil
}

func (ctrl *AuthController) secureCookie() bool {
	return ctrl.InternalConfig.App.Env == "production"
}

func (ctrl *AuthController) timeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *AuthController) heartbeat() time.Duration {
	if ctrl.InternalConfig.App.SessionEventsHeartbeat > 0 {
		return ctrl.InternalConfig.App.SessionEventsHeartbeat
	}
	return defaultEventsHeartbeat
}

func loginResponse(result *models.Session) responses.LoginUser {
	role := result.User.Role
	if normalized, ok := access.NormalizeRole(role); ok {
		role = string(normalized)
	}
	return responses.LoginUser{
		User:      result.User,
		Role:      role,
		LoginTime: result.LoginTime.UnixMilli(),
	}
}
