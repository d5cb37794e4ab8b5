package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type BillStore struct {
	*crudStore[models.Bill]
	client contracts.BillClient
}

func NewBillStore(client contracts.BillClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *BillStore {
	return &BillStore{
		crudStore: newCRUDStore[models.Bill](
			constvars.StoreBills, constvars.ResourceBilling, constvars.ErrStoreFetchBills, client,
			crudMessages{
				created:      constvars.NotifyBillCreated,
				updated:      constvars.NotifyBillUpdated,
				deleted:      constvars.NotifyBillDeleted,
				createFailed: constvars.NotifyBillCreateFailed,
				updateFailed: constvars.NotifyBillUpdateFailed,
				deleteFailed: constvars.NotifyBillDeleteFailed,
			},
			notifier, sink, logger,
		),
		client: client,
	}
}

func (s *BillStore) Create(ctx context.Context, input requests.CreateBill) error {
	return s.create(ctx, input)
}

func (s *BillStore) Update(ctx context.Context, id int64, patch requests.UpdateBill) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed)
}

func (s *BillStore) ByPatient(ctx context.Context, patientID int64) ([]models.Bill, error) {
	return s.client.ListByPatient(ctx, patientID)
}

// Revenue sums the amounts of every cached bill.
func (s *BillStore) Revenue() float64 {
	var total float64
	for _, bill := range s.Collection() {
		total += bill.Amount
	}
	return total
}
