package utils

import (
	"dentclinic-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
