package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSettingsRoutes(router chi.Router, middlewares *middlewares.Middlewares, settingsController *controllers.SettingsController) {
	router.Use(middlewares.RequireRoles("owner"))
	router.Get("/", settingsController.Get)
	router.Put("/", settingsController.Update)
}
