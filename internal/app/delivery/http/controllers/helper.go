package controllers

import (
	"context"
	"dentclinic-service/internal/app/services/backend"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/responses"
	"dentclinic-service/internal/pkg/exceptions"
	"dentclinic-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// respondError maps backend and context failures onto the client error
// envelope before writing it.
func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		if apiErr.Status == 0 {
			utils.BuildErrorResponse(log, w, exceptions.ErrBackendRequest(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable))
			return
		}
		utils.BuildErrorResponse(log, w, exceptions.ErrBackendRequest(err, apiErr.Status, apiErr.Message))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

type collectionView[T any] interface {
	Collection() []T
	Loading() bool
	Err() error
}

func buildCollection[T any](view collectionView[T]) responses.Collection[T] {
	collection := responses.Collection[T]{
		Items:   view.Collection(),
		Loading: view.Loading(),
	}
	if err := view.Err(); err != nil {
		collection.Error = stores.UserMessage(err, err.Error())
	}
	return collection
}

func listHandler[T any](resource string, view collectionView[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CollectionGetSuccess, resource), buildCollection[T](view))
	}
}

// mutationHandler runs one store mutation and answers with the refreshed
// collection, so the caller sees its own write.
func mutationHandler[T any](log *zap.Logger, timeout time.Duration, operation string, status int, view collectionView[T], message string, run func(ctx context.Context, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := utils.GetRequestID(r.Context())

		ctx, cancel := requestContext(r, timeout)
		defer cancel()

		if err := run(ctx, r); err != nil {
			log.Error(operation+" failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Error(err),
			)
			respondError(log, w, err)
			return
		}

		log.Info(operation+" succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
		utils.BuildSuccessResponse(w, status, message, buildCollection[T](view))
	}
}

// inputRecorder is the store that reports a request failing before the
// mutation runs, so the user sees the same error slot and toast.
type inputRecorder interface {
	RecordInputError(ctx context.Context, err error) error
}

// withID parses the {id} URL param before calling fn.
func withID(store inputRecorder, fn func(ctx context.Context, id int64) error) func(ctx context.Context, r *http.Request) error {
	return func(ctx context.Context, r *http.Request) error {
		id, err := utils.ParseIDParam(r)
		if err != nil {
			return store.RecordInputError(ctx, err)
		}
		return fn(ctx, id)
	}
}

// withBody decodes the JSON body into a fresh B before calling fn. Stores
// validate the input themselves so that a rejected input is reported like any
// other failed mutation.
func withBody[B any](store inputRecorder, fn func(ctx context.Context, body B) error) func(ctx context.Context, r *http.Request) error {
	return func(ctx context.Context, r *http.Request) error {
		var body B
		if err := utils.DecodeJSONBody(r, &body); err != nil {
			return store.RecordInputError(ctx, err)
		}
		return fn(ctx, body)
	}
}

func withIDAndBody[B any](store inputRecorder, fn func(ctx context.Context, id int64, body B) error) func(ctx context.Context, r *http.Request) error {
	return func(ctx context.Context, r *http.Request) error {
		id, err := utils.ParseIDParam(r)
		if err != nil {
			return store.RecordInputError(ctx, err)
		}
		var body B
		if err := utils.DecodeJSONBody(r, &body); err != nil {
			return store.RecordInputError(ctx, err)
		}
		return fn(ctx, id, body)
	}
}
