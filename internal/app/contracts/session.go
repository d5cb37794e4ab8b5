package contracts

import (
	"context"
	"dentclinic-service/internal/app/models"
	"time"
)

// SessionStorage keeps the per-browser slots. Identity writes update
// currentUser and user together, and every write is announced to the
// session's subscribers.
type SessionStorage interface {
	ReadSlots(ctx context.Context, sid string) (map[string]string, error)
	WriteIdentity(ctx context.Context, sid string, identityJSON []byte, loginTime *time.Time) error
	WriteLoginTime(ctx context.Context, sid string, loginTime time.Time) error
	Clear(ctx context.Context, sid string, slots ...string) error
	Subscribe(ctx context.Context, sid string) (<-chan models.SessionEvent, func(), error)
}
