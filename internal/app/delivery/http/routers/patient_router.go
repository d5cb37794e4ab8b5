package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles("owner", "doctor", "staff", "receptionist", "admin"))
		r.Get("/", patientController.List)
		r.Post("/", patientController.Create)
		r.Put("/{id}", patientController.Update)
		r.Delete("/{id}", patientController.Delete)
	})
	router.With(middlewares.RequireRoles("owner", "doctor", "receptionist")).Get("/{id}", patientController.Detail)
}
