package controllers

import (
	"dentclinic-service/internal/app/services/core/access"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/app/services/shared/notification"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultNotificationLimit = 20

type DashboardController struct {
	Log      *zap.Logger
	Stores   *stores.Provider
	Feed     *notification.Feed
	Location *time.Location
	now      func() time.Time
}

func NewDashboardController(logger *zap.Logger, provider *stores.Provider, feed *notification.Feed, location *time.Location) *DashboardController {
	return &DashboardController{
		Log:      logger,
		Stores:   provider,
		Feed:     feed,
		Location: location,
		now:      time.Now,
	}
}

// Summary renders the landing view metrics for the caller's role.
func (ctrl *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentity(r.Context())
	summary := ctrl.Stores.Summary(ctrl.now(), ctrl.Location, access.Role(identity.Role))

	ctrl.Log.Debug("DashboardController.Summary",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingRoleKey, identity.Role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSummarySuccess, summary)
}

// Notifications lists the newest notifications raised by this browser
// session. ?limit caps the count.
func (ctrl *DashboardController) Notifications(w http.ResponseWriter, r *http.Request) {
	limit := defaultNotificationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	items := ctrl.Feed.Recent(utils.GetSessionID(r.Context()), limit)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CollectionGetSuccess, "notifications"), items)
}
