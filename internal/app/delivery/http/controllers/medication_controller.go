package controllers

import (
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type MedicationController struct {
	Log     *zap.Logger
	Stores  *stores.Provider
	Timeout time.Duration
}

func NewMedicationController(logger *zap.Logger, provider *stores.Provider, timeout time.Duration) *MedicationController {
	return &MedicationController{
		Log:     logger,
		Stores:  provider,
		Timeout: timeout,
	}
}

func (ctrl *MedicationController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Medication](constvars.ResourceMedications, ctrl.Stores.Medications)(w, r)
}

func (ctrl *MedicationController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Medication](ctrl.Log, ctrl.Timeout, "MedicationController.Create", constvars.StatusCreated,
		ctrl.Stores.Medications, constvars.NotifyMedicationCreated, withBody(ctrl.Stores.Medications, ctrl.Stores.Medications.Create))(w, r)
}

func (ctrl *MedicationController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Medication](ctrl.Log, ctrl.Timeout, "MedicationController.Update", constvars.StatusOK,
		ctrl.Stores.Medications, constvars.NotifyMedicationUpdated, withIDAndBody(ctrl.Stores.Medications, ctrl.Stores.Medications.Update))(w, r)
}

func (ctrl *MedicationController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Medication](ctrl.Log, ctrl.Timeout, "MedicationController.Delete", constvars.StatusOK,
		ctrl.Stores.Medications, constvars.NotifyMedicationDeleted, withID(ctrl.Stores.Medications, ctrl.Stores.Medications.Delete))(w, r)
}
