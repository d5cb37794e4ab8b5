package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, middlewares *middlewares.Middlewares, billingController *controllers.BillingController) {
	router.Use(middlewares.RequireRoles("owner", "doctor", "receptionist", "staff"))
	router.Get("/", billingController.List)
	router.Post("/", billingController.Create)
	router.Put("/{id}", billingController.Update)
	router.Delete("/{id}", billingController.Delete)
}
