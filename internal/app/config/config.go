package config

import (
	"dentclinic-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			FrontendDomain:            utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			NotificationFeedSize:      utils.GetEnvInt("APP_NOTIFICATION_FEED_SIZE", 50),
			SessionEventsHeartbeat:    utils.GetEnvDuration("APP_SESSION_EVENTS_HEARTBEAT", 25*time.Second),
			InitialLoadTimeoutSeconds: utils.GetEnvInt("APP_INITIAL_LOAD_TIMEOUT_IN_SECONDS", 30),
		},
		Backend: AppBackend{
			BaseUrl:           utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8081"),
			TimeoutInSeconds:  utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 15),
			RequestsPerSecond: utils.GetEnvFloat("BACKEND_REQUESTS_PER_SECOND", 20),
			Burst:             utils.GetEnvInt("BACKEND_BURST", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "dashboard.notifications"),
		},
	}
}
