package utils

import (
	"context"

	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok {
		return sessionID
	}
	return ""
}

func GetIdentity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(models.Identity)
	return identity, ok
}
