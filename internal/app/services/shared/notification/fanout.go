package notification

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

// Fanout stamps a notification and hands it to every notifier in order.
type Fanout struct {
	notifiers []contracts.Notifier
	now       func() time.Time
}

func NewFanout(notifiers ...contracts.Notifier) *Fanout {
	return &Fanout{notifiers: notifiers, now: time.Now}
}

func (f *Fanout) Notify(ctx context.Context, notification models.Notification) {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = f.now()
	}
	if notification.RequestID == "" {
		notification.RequestID = utils.GetRequestID(ctx)
	}
	if notification.SessionID == "" {
		notification.SessionID = utils.GetSessionID(ctx)
	}
	for _, notifier := range f.notifiers {
		notifier.Notify(ctx, notification)
	}
}
