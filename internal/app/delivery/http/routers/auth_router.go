package routers

import (
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"
	"dentclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post(constvars.RouteLogin, authController.Login)
	router.Post(constvars.RouteRegister, authController.Register)
	router.Post(constvars.RouteLogout, authController.Logout)

	router.Route("/session", func(r chi.Router) {
		r.Use(middlewares.RequireSession)
		r.Get("/", authController.Current)
		r.Get("/events", authController.Events)
	})
}
