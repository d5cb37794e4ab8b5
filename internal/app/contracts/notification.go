package contracts

import (
	"context"
	"dentclinic-service/internal/app/models"
)

type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}
