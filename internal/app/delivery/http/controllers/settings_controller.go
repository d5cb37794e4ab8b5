package controllers

import (
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/requests"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SettingsController struct {
	Log      *zap.Logger
	Clinical contracts.ClinicalClient
	Notifier contracts.Notifier
	Timeout  time.Duration
}

func NewSettingsController(logger *zap.Logger, clinical contracts.ClinicalClient, notifier contracts.Notifier, timeout time.Duration) *SettingsController {
	return &SettingsController{
		Log:      logger,
		Clinical: clinical,
		Notifier: notifier,
		Timeout:  timeout,
	}
}

func (ctrl *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	settings, err := ctrl.Clinical.GetSettings(ctx)
	if err != nil {
		ctrl.Log.Error("SettingsController.Get failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		respondError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceGetSuccess, constvars.ResourceSettings), settings)
}

func (ctrl *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.UpdateSettings)
	if err := utils.DecodeRequestBody(r, request); err != nil {
		ctrl.notify(r, models.NotificationError, stores.UserMessage(err, constvars.NotifySettingsUpdateFailed))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	settings, err := ctrl.Clinical.UpdateSettings(ctx, request)
	if err != nil {
		ctrl.Log.Error("SettingsController.Update failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.notify(r, models.NotificationError, stores.UserMessage(err, constvars.NotifySettingsUpdateFailed))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.notify(r, models.NotificationSuccess, constvars.NotifySettingsUpdated)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettingsUpdatedSuccess, settings)
}

func (ctrl *SettingsController) notify(r *http.Request, level, message string) {
	if ctrl.Notifier == nil {
		return
	}
	ctrl.Notifier.Notify(r.Context(), models.Notification{
		Level:    level,
		Message:  message,
		Resource: constvars.ResourceSettings,
	})
}
