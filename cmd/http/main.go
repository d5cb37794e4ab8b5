package main

import (
	"context"
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/app/contracts"
	"dentclinic-service/internal/app/delivery/http/controllers"
	"dentclinic-service/internal/app/delivery/http/middlewares"
	"dentclinic-service/internal/app/delivery/http/routers"
	"dentclinic-service/internal/app/drivers/database"
	"dentclinic-service/internal/app/drivers/logger"
	"dentclinic-service/internal/app/drivers/messaging"
	"dentclinic-service/internal/app/services/backend"
	"dentclinic-service/internal/app/services/core/session"
	"dentclinic-service/internal/app/services/core/stores"
	"dentclinic-service/internal/app/services/shared/notification"
	"dentclinic-service/internal/app/services/shared/redis"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Backend
	backendClient := backend.NewClient(bootstrap.InternalConfig.Backend, bootstrap.Logger)
	clinicalClient := backend.NewClinicalClient(backendClient)
	authClient := backend.NewAuthClient(backendClient)

	// Notifications
	feed := notification.NewFeed(bootstrap.InternalConfig.App.NotificationFeedSize)
	notifiers := []contracts.Notifier{feed}
	if bootstrap.RabbitMQ != nil {
		queuePublisher, err := notification.NewQueuePublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.NotificationQueue)
		if err != nil {
			logrus.Fatalf("Failed to declare notification queue: %v", err)
		}
		notifiers = append(notifiers, queuePublisher)
	}
	notifier := notification.NewFanout(notifiers...)

	// Stores
	provider := stores.NewProvider(stores.Clients{
		Patients:     backend.NewPatientClient(backendClient),
		Appointments: backend.NewAppointmentClient(backendClient),
		Expenses:     backend.NewExpenseClient(backendClient),
		Users:        backend.NewUserClient(backendClient),
		Bills:        backend.NewBillClient(backendClient),
		Medications:  backend.NewMedicationClient(backendClient),
	}, notifier, bootstrap.Logger)

	loadCtx, cancel := context.WithTimeout(context.Background(), time.Duration(bootstrap.InternalConfig.App.InitialLoadTimeoutSeconds)*time.Second)
	if err := provider.Load(loadCtx); err != nil {
		bootstrap.Logger.Warn("Initial load finished with errors", zap.Error(err))
	}
	cancel()

	// Session
	sessionRepository := redis.NewSessionRepository(bootstrap.Redis, bootstrap.Logger)
	sessions := session.NewManager(sessionRepository, authClient, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessions, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.Logger, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Auth:         controllers.NewAuthController(bootstrap.Logger, sessions, bootstrap.InternalConfig),
		Dashboard:    controllers.NewDashboardController(bootstrap.Logger, provider, feed, location),
		Patients:     controllers.NewPatientController(bootstrap.Logger, provider, clinicalClient, requestTimeout),
		Appointments: controllers.NewAppointmentController(bootstrap.Logger, provider, location, requestTimeout),
		Billing:      controllers.NewBillingController(bootstrap.Logger, provider, requestTimeout),
		Expenses:     controllers.NewExpenseController(bootstrap.Logger, provider, requestTimeout),
		Staff:        controllers.NewStaffController(bootstrap.Logger, provider, requestTimeout),
		Medications:  controllers.NewMedicationController(bootstrap.Logger, provider, requestTimeout),
		Settings:     controllers.NewSettingsController(bootstrap.Logger, clinicalClient, notifier, requestTimeout),
	})
}
