package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachExpenseRoutes(router chi.Router, middlewares *middlewares.Middlewares, expenseController *controllers.ExpenseController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles("owner", "doctor", "staff"))
		r.Get("/", expenseController.List)
		r.Get("/pending", expenseController.Pending)
		r.Post("/", expenseController.Create)
		r.Put("/{id}", expenseController.Update)
		r.Delete("/{id}", expenseController.Delete)
	})
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles("owner", "admin"))
		r.Post("/{id}/approve", expenseController.Approve)
		r.Post("/{id}/reject", expenseController.Reject)
	})
}
