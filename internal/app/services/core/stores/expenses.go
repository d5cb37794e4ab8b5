package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// ExpenseStore holds all expenses and, separately, the pending ones. Every
// write refreshes both.
type ExpenseStore struct {
	*crudStore[models.Expense]
	Pending *Resource[models.Expense]
	client  contracts.ExpenseClient
}

func NewExpenseStore(client contracts.ExpenseClient, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *ExpenseStore {
	return &ExpenseStore{
		crudStore: newCRUDStore[models.Expense](
			constvars.StoreExpenses, constvars.ResourceExpenses, constvars.ErrStoreFetchExpenses, client,
			crudMessages{
				created:      constvars.NotifyExpenseCreated,
				updated:      constvars.NotifyExpenseUpdated,
				deleted:      constvars.NotifyExpenseDeleted,
				createFailed: constvars.NotifyExpenseCreateFailed,
				updateFailed: constvars.NotifyExpenseUpdateFailed,
				deleteFailed: constvars.NotifyExpenseDeleteFailed,
			},
			notifier, sink, logger,
		),
		Pending: NewResource[models.Expense](constvars.StorePendingExpenses, constvars.ErrStoreFetchPendingExpenses, client.ListPending, sink, logger),
		client:  client,
	}
}

func (s *ExpenseStore) Create(ctx context.Context, input requests.CreateExpense) error {
	return s.create(ctx, input, s.Pending)
}

func (s *ExpenseStore) Update(ctx context.Context, id int64, patch requests.UpdateExpense) error {
	return s.update(ctx, id, patch, s.messages.updated, s.messages.updateFailed, s.Pending)
}

func (s *ExpenseStore) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id, s.Pending)
}

func (s *ExpenseStore) Approve(ctx context.Context, id int64) error {
	return s.mutator.run(ctx, mutation{
		operation: s.name + ".Approve",
		success:   constvars.NotifyExpenseApproved,
		failure:   constvars.NotifyExpenseApproveFailed,
		also:      []refresher{s.Pending},
		call: func(ctx context.Context) error {
			return s.client.Approve(ctx, id)
		},
	})
}

func (s *ExpenseStore) Reject(ctx context.Context, id int64) error {
	return s.mutator.run(ctx, mutation{
		operation: s.name + ".Reject",
		success:   constvars.NotifyExpenseRejected,
		failure:   constvars.NotifyExpenseRejectFailed,
		also:      []refresher{s.Pending},
		call: func(ctx context.Context) error {
			return s.client.Reject(ctx, id)
		},
	})
}
