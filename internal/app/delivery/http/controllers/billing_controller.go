package controllers

import (
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type BillingController struct {
	Log     *zap.Logger
	Stores  *stores.Provider
	Timeout time.Duration
}

func NewBillingController(logger *zap.Logger, provider *stores.Provider, timeout time.Duration) *BillingController {
	return &BillingController{
		Log:     logger,
		Stores:  provider,
		Timeout: timeout,
	}
}

func (ctrl *BillingController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Bill](constvars.ResourceBilling, ctrl.Stores.Bills)(w, r)
}

func (ctrl *BillingController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Bill](ctrl.Log, ctrl.Timeout, "BillingController.Create", constvars.StatusCreated,
		ctrl.Stores.Bills, constvars.NotifyBillCreated, withBody(ctrl.Stores.Bills, ctrl.Stores.Bills.Create))(w, r)
}

func (ctrl *BillingController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Bill](ctrl.Log, ctrl.Timeout, "BillingController.Update", constvars.StatusOK,
		ctrl.Stores.Bills, constvars.NotifyBillUpdated, withIDAndBody(ctrl.Stores.Bills, ctrl.Stores.Bills.Update))(w, r)
}

func (ctrl *BillingController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Bill](ctrl.Log, ctrl.Timeout, "BillingController.Delete", constvars.StatusOK,
		ctrl.Stores.Bills, constvars.NotifyBillDeleted, withID(ctrl.Stores.Bills, ctrl.Stores.Bills.Delete))(w, r)
}
