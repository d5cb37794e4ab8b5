package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type MedicationStore struct {
	*crudStore[models.Medication]
}

func NewMedicationStore(client contracts.MedicationClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *MedicationStore {
	return &MedicationStore{newCRUDStore[models.Medication](
		constvars.StoreMedications, constvars.ResourceMedications, constvars.ErrStoreFetchMedications, client,
		crudMessages{
			created:      constvars.NotifyMedicationCreated,
			updated:      constvars.NotifyMedicationUpdated,
			deleted:      constvars.NotifyMedicationDeleted,
			createFailed: constvars.NotifyMedicationCreateFailed,
			updateFailed: constvars.NotifyMedicationUpdateFailed,
			deleteFailed: constvars.NotifyMedicationDeleteFailed,
		},
		notifier, sink, logger,
	)}
}

func (s *MedicationStore) Create(ctx context.Context, input requests.CreateMedication) error {
	return s.create(ctx, input)
}

func (s *MedicationStore) Update(ctx context.Context, id int64, patch requests.UpdateMedication) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed)
}
