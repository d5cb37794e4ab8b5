package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Use(middlewares.RequireRoles("owner"))
	router.Get("/", staffController.List)
	router.Get("/role/{role}", staffController.ByRole)
	router.Post("/", staffController.Create)
	router.Put("/{id}", staffController.Update)
	router.Delete("/{id}", staffController.Delete)
}
