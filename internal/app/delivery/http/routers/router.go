package routers

import (
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"
	"dentclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Controllers bundles every view handler the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Dashboard    *controllers.DashboardController
	Patients     *controllers.PatientController
	Appointments *controllers.AppointmentController
	Billing      *controllers.BillingController
	Expenses     *controllers.ExpenseController
	Staff        *controllers.StaffController
	Medications  *controllers.MedicationController
	Settings     *controllers.SettingsController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = []string{internalConfig.App.FrontendDomain}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(middlewares.RateLimit())
	}

	router.Use(middlewares.SessionCookie)

	attachAuthRoutes(router, middlewares, handlers.Auth)

	router.Route(constvars.RouteDashboard, func(r chi.Router) {
		attachDashboardRoutes(r, middlewares, handlers.Dashboard)

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, handlers.Patients)
		})
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, handlers.Appointments)
		})
		r.Route("/billing", func(r chi.Router) {
			attachBillingRoutes(r, middlewares, handlers.Billing)
		})
		r.Route("/expenses", func(r chi.Router) {
			attachExpenseRoutes(r, middlewares, handlers.Expenses)
		})
		r.Route("/staff", func(r chi.Router) {
			attachStaffRoutes(r, middlewares, handlers.Staff)
		})
		r.Route("/medications", func(r chi.Router) {
			attachMedicationRoutes(r, middlewares, handlers.Medications)
		})
		r.Route("/settings", func(r chi.Router) {
			attachSettingsRoutes(r, middlewares, handlers.Settings)
		})
	})
}
