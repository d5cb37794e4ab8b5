package messaging

import (
	"dentclinic-service/internal/app/config"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// NewRabbitMQ returns nil when the notification queue is disabled, so the
// dashboard can run with the in-process notification feed only.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		logrus.Println("RabbitMQ disabled, notifications stay in-process")
		return nil
	}
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	logrus.Println("Successfully connected to rabbitMQ")
	return conn
}
