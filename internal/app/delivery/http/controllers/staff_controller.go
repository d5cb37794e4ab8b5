package controllers

import (
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StaffController manages clinic user accounts.
type StaffController struct {
	Log     *zap.Logger
	Stores  *stores.Provider
	Timeout time.Duration
}

func NewStaffController(logger *zap.Logger, provider *stores.Provider, timeout time.Duration) *StaffController {
	return &StaffController{
		Log:     logger,
		Stores:  provider,
		Timeout: timeout,
	}
}

func (ctrl *StaffController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.User](constvars.ResourceUsers, ctrl.Stores.Users)(w, r)
}

// ByRole lists users with the given role as the backend stores it.
func (ctrl *StaffController) ByRole(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, constvars.URLParamRole)

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	users, err := ctrl.Stores.Users.ByRole(ctx, role)
	if err != nil {
		ctrl.Log.Error("StaffController.ByRole failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingRoleKey, role),
			zap.Error(err),
		)
		respondError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CollectionGetSuccess, constvars.ResourceUsers), users)
}

func (ctrl *StaffController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.User](ctrl.Log, ctrl.Timeout, "StaffController.Create", constvars.StatusCreated,
		ctrl.Stores.Users, constvars.NotifyUserCreated, withBody(ctrl.Stores.Users, ctrl.Stores.Users.Create))(w, r)
}

func (ctrl *StaffController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.User](ctrl.Log, ctrl.Timeout, "StaffController.Update", constvars.StatusOK,
		ctrl.Stores.Users, constvars.NotifyUserUpdated, withIDAndBody(ctrl.Stores.Users, ctrl.Stores.Users.Update))(w, r)
}

func (ctrl *StaffController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.User](ctrl.Log, ctrl.Timeout, "StaffController.Delete", constvars.StatusOK,
		ctrl.Stores.Users, constvars.NotifyUserDeleted, withID(ctrl.Stores.Users, ctrl.Stores.Users.Delete))(w, r)
}
