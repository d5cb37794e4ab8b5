package stores

import (
	"context"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/utils"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// FetchFunc loads the full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ErrorSink receives every error recorded by a store.
type ErrorSink func(store string, err error)

// Resource caches the last successful fetch of one backend collection.
//
// Each Refresh takes a sequence number when it starts. A response, success
// or failure, is applied only if no response with a higher number has been
// applied yet, so a slow older fetch never overwrites a newer one.
type Resource[T any] struct {
	name     string
	fallback string
	fetch    FetchFunc[T]
	sink     ErrorSink
	Log      *zap.Logger

	mu       sync.RWMutex
	items    []T
	inFlight int
	err      error
	issued   uint64
	applied  uint64
}

func NewResource[T any](name, fallback string, fetch FetchFunc[T], sink ErrorSink, logger *zap.Logger) *Resource[T] {
	return &Resource[T]{
		name:     name,
		fallback: fallback,
		fetch:    fetch,
		sink:     sink,
		Log:      logger,
		items:    make([]T, 0),
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// Collection returns a copy of the cached items. It is never nil.
func (r *Resource[T]) Collection() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inFlight > 0
}

func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Refresh replaces the collection with a fresh fetch. On failure the cached
// items stay as they were and the error is recorded and returned.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	r.mu.Lock()
	r.issued++
	seq := r.issued
	r.inFlight++
	r.mu.Unlock()

	r.Log.Debug("stores.Resource.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreKey, r.name),
		zap.Uint64(constvars.LoggingSequenceKey, seq),
	)

	items, err := r.fetch(ctx)
	if err != nil && err.Error() == "" {
		err = errors.New(r.fallback)
	}

	r.mu.Lock()
	r.inFlight--
	stale := seq <= r.applied
	if !stale {
		r.applied = seq
		if err != nil {
			r.err = err
		} else {
			if items == nil {
				items = make([]T, 0)
			}
			r.items = items
			r.err = nil
		}
	}
	r.mu.Unlock()

	if stale {
		r.Log.Debug("stores.Resource.Refresh discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreKey, r.name),
			zap.Uint64(constvars.LoggingSequenceKey, seq),
		)
	}

	if err != nil {
		r.Log.Error("stores.Resource.Refresh error fetching collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreKey, r.name),
			zap.Error(err),
		)
		if !stale && r.sink != nil {
			r.sink(r.name, err)
		}
		return err
	}

	r.Log.Debug("stores.Resource.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreKey, r.name),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)
	return nil
}

// recordError sets the store error without touching the collection.
func (r *Resource[T]) recordError(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()

	if r.sink != nil {
		r.sink(r.name, err)
	}
}
