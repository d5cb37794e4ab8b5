package stores

import (
	"context"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/backend"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/exceptions"
	"dentclinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

type errorRecorder interface {
	recordError(err error)
}

// mutator runs a backend write followed by a refetch of the owning store.
type mutator struct {
	owner    interface {
		refresher
		errorRecorder
	}
	resource string
	notifier contracts.Notifier
	Log      *zap.Logger
}

type mutation struct {
	operation string
	success   string
	failure   string
	input     interface{}
	call      func(ctx context.Context) error
	also      []refresher
}

// run validates the input, calls the backend, then refreshes the owner and
// any extra stores. A failed follow-up refresh is recorded by the store but
// does not fail the mutation, since the write itself went through.
func (m *mutator) run(ctx context.Context, mu mutation) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("stores."+mu.operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, m.resource),
	)

	if mu.input != nil {
		if err := utils.ValidateStruct(mu.input); err != nil {
			return m.fail(ctx, mu, exceptions.ErrInputValidation(err))
		}
	}

	if err := mu.call(ctx); err != nil {
		return m.fail(ctx, mu, err)
	}

	targets := append([]refresher{m.owner}, mu.also...)
	for _, target := range targets {
		if err := target.Refresh(ctx); err != nil {
			m.Log.Warn("stores."+mu.operation+" write succeeded but refresh failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStoreKey, target.Name()),
				zap.Error(err),
			)
		}
	}

	m.notify(ctx, models.NotificationSuccess, mu.success)
	m.Log.Info("stores."+mu.operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, m.resource),
	)
	return nil
}

func (m *mutator) fail(ctx context.Context, mu mutation, err error) error {
	m.Log.Error("stores."+mu.operation+" error",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, m.resource),
		zap.Error(err),
	)
	m.owner.recordError(err)
	m.notify(ctx, models.NotificationError, UserMessage(err, mu.failure))
	return err
}

func (m *mutator) notify(ctx context.Context, level, message string) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(ctx, models.Notification{
		Level:    level,
		Message:  message,
		Resource: m.resource,
	})
}

// UserMessage picks the text shown to the dashboard user for err.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if customErr, ok := exceptions.AsCustomError(err); ok && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return fallback
}
