package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.RequireAnyRole()).Get("/", dashboardController.Summary)
	router.With(middlewares.RequireAnyRole()).Get("/notifications", dashboardController.Notifications)
}
