package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *controllers.MedicationController) {
	router.Use(middlewares.RequireRoles("owner", "doctor"))
	router.Get("/", medicationController.List)
	router.Post("/", medicationController.Create)
	router.Put("/{id}", medicationController.Update)
	router.Delete("/{id}", medicationController.Delete)
}
