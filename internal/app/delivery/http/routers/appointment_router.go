package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.RequireRoles("owner", "doctor", "receptionist", "staff"))
	router.Get("/", appointmentController.List)
	router.Get("/today", appointmentController.Today)
	router.Get("/overdue", appointmentController.Overdue)
	router.Post("/", appointmentController.Create)
	router.Put("/{id}", appointmentController.Update)
	router.Delete("/{id}", appointmentController.Delete)
	router.Post("/{id}/complete", appointmentController.Complete)
	router.Post("/{id}/cancel", appointmentController.Cancel)
	router.Post("/{id}/reschedule", appointmentController.Reschedule)
}
