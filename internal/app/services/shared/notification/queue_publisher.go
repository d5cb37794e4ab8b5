package notification

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// QueuePublisher forwards notifications to a RabbitMQ queue for consumers
// outside the dashboard process (mobile push, audit trail).
type QueuePublisher struct {
	Channel amqpPublisher
	Queue   string
	Log     *zap.Logger
}

func NewQueuePublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (*QueuePublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return &QueuePublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *QueuePublisher) Notify(ctx context.Context, notification models.Notification) {
	_ = s.Publish(ctx, notification)
}

func (s *QueuePublisher) Publish(ctx context.Context, notification models.Notification) error {
	requestID := notification.RequestID

	s.Log.Info("QueuePublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := json.Marshal(notification)
	if err != nil {
		s.Log.Error("QueuePublisher.Publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    notification.ID,
		Timestamp:    notification.CreatedAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"level":        notification.Level,
			"resource":     notification.Resource,
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("QueuePublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrMessagingPublish(err, s.Queue)
	}

	s.Log.Info("QueuePublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}
