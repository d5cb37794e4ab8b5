package controllers

import (
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/pkg/constvars"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ExpenseController struct {
	Log     *zap.Logger
	Stores  *stores.Provider
	Timeout time.Duration
}

func NewExpenseController(logger *zap.Logger, provider *stores.Provider, timeout time.Duration) *ExpenseController {
	return &ExpenseController{
		Log:     logger,
		Stores:  provider,
		Timeout: timeout,
	}
}

func (ctrl *ExpenseController) List(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Expense](constvars.ResourceExpenses, ctrl.Stores.Expenses)(w, r)
}

func (ctrl *ExpenseController) Pending(w http.ResponseWriter, r *http.Request) {
	listHandler[models.Expense]("pending expenses", ctrl.Stores.Expenses.Pending)(w, r)
}

func (ctrl *ExpenseController) Create(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Expense](ctrl.Log, ctrl.Timeout, "ExpenseController.Create", constvars.StatusCreated,
		ctrl.Stores.Expenses, constvars.NotifyExpenseCreated, withBody(ctrl.Stores.Expenses, ctrl.Stores.Expenses.Create))(w, r)
}

func (ctrl *ExpenseController) Update(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Expense](ctrl.Log, ctrl.Timeout, "ExpenseController.Update", constvars.StatusOK,
		ctrl.Stores.Expenses, constvars.NotifyExpenseUpdated, withIDAndBody(ctrl.Stores.Expenses, ctrl.Stores.Expenses.Update))(w, r)
}

func (ctrl *ExpenseController) Delete(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Expense](ctrl.Log, ctrl.Timeout, "ExpenseController.Delete", constvars.StatusOK,
		ctrl.Stores.Expenses, constvars.NotifyExpenseDeleted, withID(ctrl.Stores.Expenses, ctrl.Stores.Expenses.Delete))(w, r)
}

// Approve answers with the refreshed pending list.
func (ctrl *ExpenseController) Approve(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Expense](ctrl.Log, ctrl.Timeout, "ExpenseController.Approve", constvars.StatusOK,
		ctrl.Stores.Expenses.Pending, constvars.NotifyExpenseApproved, withID(ctrl.Stores.Expenses, ctrl.Stores.Expenses.Approve))(w, r)
}

func (ctrl *ExpenseController) Reject(w http.ResponseWriter, r *http.Request) {
	mutationHandler[models.Expense](ctrl.Log, ctrl.Timeout, "ExpenseController.Reject", constvars.StatusOK,
		ctrl.Stores.Expenses.Pending, constvars.NotifyExpenseRejected, withID(ctrl.Stores.Expenses, ctrl.Stores.Expenses.Reject))(w, r)
}
