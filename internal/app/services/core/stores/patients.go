package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type PatientStore struct {
	*crudStore[models.Patient]
}

func NewPatientStore(client contracts.PatientClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *PatientStore {
	return &PatientStore{newCRUDStore[models.Patient](
		constvars.StorePatients, constvars.ResourcePatients, constvars.ErrStoreFetchPatients, client,
		crudMessages{
			created:      constvars.NotifyPatientCreated,
			updated:      constvars.NotifyPatientUpdated,
			deleted:      constvars.NotifyPatientDeleted,
			createFailed: constvars.NotifyPatientCreateFailed,
			updateFailed: constvars.NotifyPatientUpdateFailed,
			deleteFailed: constvars.NotifyPatientDeleteFailed,
		},
		notifier, sink, logger,
	)}
}

func (s *PatientStore) Create(ctx context.Context, input requests.CreatePatient) error {
	return s.create(ctx, input)
}

func (s *PatientStore) Update(ctx context.Context, id int64, patch requests.UpdatePatient) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed)
}
