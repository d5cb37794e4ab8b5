package controllers

import (
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/dto/responses"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PatientController struct {
	Log      *zap.Logger
	Stores   *stores.Provider
	Clinical contracts.ClinicalClient
	Timeout  time.Duration
}

func NewPatientController(logger *zap.Logger, provider *stores.Provider, clinical contracts.ClinicalClient, timeout time.Duration) *PatientController {
	return &PatientController{
		Log:      logger,
		Stores:   provider,
		Clinical: clinical,
		Timeout:  timeout,
	}
}

func (ctrl *PatientController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Patient](constvars.ResourcePatients, ctrl.Stores.Patients)(w, r)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Patient](ctrl.Log, ctrl.Timeout, "PatientController.Create", constvars.StatusCreated,
		ctrl.Stores.Patients, constvars.NotifyPatientCreated, withBody(ctrl.Stores.Patients, ctrl.Stores.Patients.Create))(w, r)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Patient](ctrl.Log, ctrl.Timeout, "PatientController.Update", constvars.StatusOK,
		ctrl.Stores.Patients, constvars.NotifyPatientUpdated, withIDAndBody(ctrl.Stores.Patients, ctrl.Stores.Patients.Update))(w, r)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Patient](ctrl.Log, ctrl.Timeout, "PatientController.Delete", constvars.StatusOK,
		ctrl.Stores.Patients, constvars.NotifyPatientDeleted, withID(ctrl.Stores.Patients, ctrl.Stores.Patients.Delete))(w, r)
}

// Detail assembles one patient's record. The patient, bills, prescriptions
// and notes are read from the backend concurrently and not cached.
func (ctrl *PatientController) Detail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	record := responses.PatientRecord{}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		patient, err := ctrl.Stores.Patients.Get(groupCtx, id)
		if err != nil {
			return err
		}
		record.Patient = *patient
		return nil
	})
	group.Go(func() error {
		bills, err := ctrl.Stores.Bills.ByPatient(groupCtx, id)
		record.Bills = bills
		return err
	})
	group.Go(func() error {
		prescriptions, err := ctrl.Clinical.PrescriptionsByPatient(groupCtx, id)
		record.Prescriptions = prescriptions
		return err
	})
	group.Go(func() error {
		notes, err := ctrl.Clinical.MedicalNotesByPatient(groupCtx, id)
		record.MedicalNotes = notes
		return err
	})

	if err := group.Wait(); err != nil {
		ctrl.Log.Error("PatientController.Detail failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingResourceIDKey, id),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Debug("PatientController.Detail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingResourceIDKey, id),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceGetSuccess, "patient"), record)
}
