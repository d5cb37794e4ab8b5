package config

import "time"

type InternalConfig struct {
	App      App
	Backend  AppBackend
	JWT      AppJWT
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	FrontendDomain            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	NotificationFeedSize      int
	SessionEventsHeartbeat    time.Duration
	InitialLoadTimeoutSeconds int
}

type AppBackend struct {
	BaseUrl           string
	TimeoutInSeconds  int
	RequestsPerSecond float64
	Burst             int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppRabbitMQ struct {
	NotificationQueue string
}
