package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type crudMessages struct {
	created      string
	updated      string
	deleted      string
	createFailed string
	updateFailed string
	deleteFailed string
}

// crudStore is a Resource plus create, update and delete through the
// backend, each followed by a refetch.
type crudStore[T any] struct {
	*Resource[T]
	client   contracts.ResourceClient[T]
	mutator  *mutator
	messages crudMessages
}

func newCRUDStore[T any](name, resource, fallback string, client contracts.ResourceClient[T], messages crudMessages, notifier contracts.Notifier, sink ErrorSink, logger *zap.Logger) *crudStore[T] {
	res := NewResource[T](name, fallback, client.List, sink, logger)
	return &crudStore[T]{
		Resource: res,
		client:   client,
		messages: messages,
		mutator: &mutator{
			owner:    res,
			resource: resource,
			notifier: notifier,
			Log:      logger,
		},
	}
}

// Get reads one item straight from the backend. It does not touch the cache.
func (s *crudStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.client.Get(ctx, id)
}

func (s *crudStore[T]) create(ctx context.Context, input interface{}, also ...refresher) error {
	return s.mutator.run(ctx, mutation{
		operation: s.name + ".Create",
		success:   s.messages.created,
		failure:   s.messages.createFailed,
		input:     input,
		also:      also,
		call: func(ctx context.Context) error {
			_, err := s.client.Create(ctx, input)
			return err
		},
	})
}

func (s *crudStore[T]) update(ctx context.Context, id int64, patch interface{}, success, failure string, also ...refresher) error {
	return s.mutator.run(ctx, mutation{
		operation: s.name + ".Update",
		success:   success,
		failure:   failure,
		input:     patch,
		also:      also,
		call: func(ctx context.Context) error {
			_, err := s.client.Update(ctx, id, patch)
			return err
		},
	})
}

func (s *crudStore[T]) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *crudStore[T]) delete(ctx context.Context, id int64, also ...refresher) error {
	return s.mutator.run(ctx, mutation{
		operation: s.name + ".Delete",
		success:   s.messages.deleted,
		failure:   s.messages.deleteFailed,
		also:      also,
		call: func(ctx context.Context) error {
			return s.client.Delete(ctx, id)
		},
	})
}

// RecordInputError reports a request the store never got to run, such as an
// undecodable body or a malformed id, the way a failed mutation is reported.
func (s *crudStore[T]) RecordInputError(ctx context.Context, err error) error {
	return s.mutator.fail(ctx, mutation{
		operation: s.name + ".Input",
		failure:   constvars.NotifyInvalidInput,
	}, err)
}
