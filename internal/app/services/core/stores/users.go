package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type UserStore struct {
	*crudStore[models.User]
	client contracts.UserClient
}

func NewUserStore(client contracts.UserClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *UserStore {
	return &UserStore{
		crudStore: newCRUDStore[models.User](
			constvars.StoreUsers, constvars.ResourceUsers, constvars.ErrStoreFetchUsers, client,
			crudMessages{
				created:      constvars.NotifyUserCreated,
				updated:      constvars.NotifyUserUpdated,
				deleted:      constvars.NotifyUserDeleted,
				createFailed: constvars.NotifyUserCreateFailed,
				updateFailed: constvars.NotifyUserUpdateFailed,
				deleteFailed: constvars.NotifyUserDeleteFailed,
			},
			notifier, sink, logger,
		),
		client: client,
	}
}

func (s *UserStore) Create(ctx context.Context, input requests.CreateUser) error {
	return s.create(ctx, input)
}

func (s *UserStore) Update(ctx context.Context, id int64, patch requests.UpdateUser) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed)
}

// ByRole asks the backend directly. The raw role is passed through unchanged.
func (s *UserStore) ByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.client.ListByRole(ctx, role)
}
