package middlewares

import (
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/app/services/core/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Sessions       *session.Manager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessions *session.Manager, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}
