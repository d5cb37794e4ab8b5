package session

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var allSlots = []string{
	constvars.SessionSlotCurrentUser,
	constvars.SessionSlotUser,
	constvars.SessionSlotLoginTime,
}

// State is the resolved session of one browser at request time.
type State struct {
	Session models.Session
	Present bool
	Expired bool
}

// Manager owns the session slots. It is the only writer of currentUser and
// user, which always receive the same bytes.
type Manager struct {
	Storage contracts.SessionStorage
	Auth    contracts.AuthClient
	Log     *zap.Logger
	MaxAge  time.Duration
	now     func() time.Time
}

func NewManager(storage contracts.SessionStorage, auth contracts.AuthClient, logger *zap.Logger) *Manager {
	return &Manager{
		Storage: storage,
		Auth:    auth,
		Log:     logger,
		MaxAge:  constvars.SessionMaxAge,
		now:     time.Now,
	}
}

func (m *Manager) Login(ctx context.Context, sid, username, password string) (*models.Session, error) {
	m.Log.Info("session.Manager.Login called",
		zap.String(constvars.LoggingSessionIDKey, sid),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	user, err := m.Auth.Login(ctx, username, password)
	if err != nil {
		m.Log.Error("session.Manager.Login error from backend",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Error(err),
		)
		return nil, err
	}
	return m.establish(ctx, sid, user)
}

func (m *Manager) Register(ctx context.Context, sid string, body interface{}) (*models.Session, error) {
	m.Log.Info("session.Manager.Register called",
		zap.String(constvars.LoggingSessionIDKey, sid),
	)

	user, err := m.Auth.Register(ctx, body)
	if err != nil {
		m.Log.Error("session.Manager.Register error from backend",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Error(err),
		)
		return nil, err
	}
	return m.establish(ctx, sid, user)
}

func (m *Manager) establish(ctx context.Context, sid string, user *models.User) (*models.Session, error) {
	loginTime := m.now()
	if err := m.persist(ctx, sid, *user, loginTime); err != nil {
		return nil, err
	}

	m.Log.Info("session.Manager established session",
		zap.String(constvars.LoggingSessionIDKey, sid),
		zap.String(constvars.LoggingUsernameKey, user.Username),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &models.Session{User: *user, LoginTime: loginTime}, nil
}

// persist writes the identity into both slots and loginTime in one transaction.
func (m *Manager) persist(ctx context.Context, sid string, user models.User, loginTime time.Time) error {
	identity, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.Storage.WriteIdentity(ctx, sid, identity, &loginTime)
}

// Logout clears every slot of sid. Other connections bound to sid observe
// the change through Events.
func (m *Manager) Logout(ctx context.Context, sid string) error {
	m.Log.Info("session.Manager.Logout called",
		zap.String(constvars.LoggingSessionIDKey, sid),
	)
	return m.Storage.Clear(ctx, sid, allSlots...)
}

// Current resolves the identity without touching loginTime.
func (m *Manager) Current(ctx context.Context, sid string) (*models.Session, bool, error) {
	slots, err := m.Storage.ReadSlots(ctx, sid)
	if err != nil {
		return nil, false, err
	}
	user, ok, err := m.identityFrom(ctx, sid, slots)
	if err != nil || !ok {
		return nil, false, err
	}
	session := &models.Session{User: *user}
	if loginTime, ok := parseLoginTime(slots[constvars.SessionSlotLoginTime]); ok {
		session.LoginTime = loginTime
	}
	return session, true, nil
}

// Check resolves the session for a protected view. A missing loginTime is
// recorded as now. A session older than MaxAge is cleared and reported
// expired.
func (m *Manager) Check(ctx context.Context, sid string) (State, error) {
	if sid == "" {
		return State{}, nil
	}

	slots, err := m.Storage.ReadSlots(ctx, sid)
	if err != nil {
		return State{}, err
	}

	user, ok, err := m.identityFrom(ctx, sid, slots)
	if err != nil {
		return State{}, err
	}
	if !ok {
		if _, stale := slots[constvars.SessionSlotLoginTime]; stale {
			if err := m.Storage.Clear(ctx, sid, constvars.SessionSlotLoginTime); err != nil {
				return State{}, err
			}
		}
		return State{}, nil
	}

	now := m.now()
	loginTime, ok := parseLoginTime(slots[constvars.SessionSlotLoginTime])
	if !ok {
		if err := m.Storage.WriteLoginTime(ctx, sid, now); err != nil {
			return State{}, err
		}
		loginTime = time.UnixMilli(now.UnixMilli())
	}

	state := State{
		Session: models.Session{User: *user, LoginTime: loginTime},
		Present: true,
	}

	if now.Sub(loginTime) > m.MaxAge {
		m.Log.Info("session.Manager.Check session expired",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Time("login_time", loginTime),
		)
		if err := m.Storage.Clear(ctx, sid, allSlots...); err != nil {
			return State{}, err
		}
		state.Expired = true
	}
	return state, nil
}

// Events streams slot changes made to sid by any connection.
func (m *Manager) Events(ctx context.Context, sid string) (<-chan models.SessionEvent, func(), error) {
	return m.Storage.Subscribe(ctx, sid)
}

// identityFrom prefers currentUser and falls back to the legacy user slot.
// An unreadable identity clears both slots.
func (m *Manager) identityFrom(ctx context.Context, sid string, slots map[string]string) (*models.User, bool, error) {
	raw, ok := slots[constvars.SessionSlotCurrentUser]
	if !ok || raw == "" {
		raw, ok = slots[constvars.SessionSlotUser]
	}
	if !ok || raw == "" {
		return nil, false, nil
	}

	user := new(models.User)
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		m.Log.Warn("session.Manager clearing unreadable identity",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Error(err),
		)
		if err := m.Storage.Clear(ctx, sid, constvars.SessionSlotCurrentUser, constvars.SessionSlotUser); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return user, true, nil
}

func parseLoginTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
