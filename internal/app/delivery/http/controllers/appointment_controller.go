package controllers

import (
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log      *zap.Logger
	Stores   *stores.Provider
	Location *time.Location
	Timeout  time.Duration
	now      func() time.Time
}

func NewAppointmentController(logger *zap.Logger, provider *stores.Provider, location *time.Location, timeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:      logger,
		Stores:   provider,
		Location: location,
		Timeout:  timeout,
		now:      time.Now,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Appointment](constvars.ResourceAppointments, ctrl.Stores.Appointments)(w, r)
}

// Today lists today's appointments in the clinic time zone, earliest first.
func (ctrl *AppointmentController) Today(w http.ResponseWriter, r *http.Request) {
	items := ctrl.Stores.Appointments.Today(ctrl.now(), ctrl.Location)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CollectionGetSuccess, "today's appointments"), items)
}

func (ctrl *AppointmentController) Overdue(w http.ResponseWriter, r *http.Request) {
	items := ctrl.Stores.Appointments.Overdue(ctrl.now(), ctrl.Location)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CollectionGetSuccess, "overdue appointments"), items)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Create", constvars.StatusCreated,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentCreated, withBody(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Create))(w, r)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Update", constvars.StatusOK,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentUpdated, withIDAndBody(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Update))(w, r)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Delete", constvars.StatusOK,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentDeleted, withID(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Delete))(w, r)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Complete", constvars.StatusOK,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentCompleted, withID(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Complete))(w, r)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Cancel", constvars.StatusOK,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentCancelled, withID(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Cancel))(w, r)
}

func (ctrl *AppointmentController) Reschedule(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Appointment](ctrl.Log, ctrl.Timeout, "AppointmentController.Reschedule", constvars.StatusOK,
		ctrl.Stores.Appointments, constvars.NotifyAppointmentResched, withIDAndBody(ctrl.Stores.Appointments, ctrl.Stores.Appointments.Reschedule))(w, r)
}
