package paymentevents

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"
)

const (
	PaymentQueueName = "portal_payment_events_queue"
)

// Publisher pushes payment events onto a durable RabbitMQ queue so the
// finance backend can reconcile checkout attempts against gateway webhooks.
type Publisher struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

func NewPublisher(conn *amqp.Connection, log *zap.Logger) (contracts.PaymentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		PaymentQueueName, // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Publisher{ch: ch, log: log}, nil
}

func (p *Publisher) PublishPaymentInitiated(ctx context.Context, event *contracts.PaymentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",               // exchange
		PaymentQueueName, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	p.log.Info("payment event published",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOrderCodeKey, event.OrderCode),
	)
	return nil
}
