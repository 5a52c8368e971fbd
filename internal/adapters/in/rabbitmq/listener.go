package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/in"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

// ScheduleChangeListener слушает события изменения записей на прием
// и инвалидирует кэшированные сетки затронутого врача. Сам реестр
// не мутируется: движок остается read-only.
type ScheduleChangeListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.ScheduleViewerUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type ChangeResourceType string

const (
	ChangeResourceTypeAll         ChangeResourceType = "_all_"
	ChangeResourceTypeAppointment ChangeResourceType = "appointment"
	ChangeResourceTypeDoctor      ChangeResourceType = "doctor"
)

type ChangeMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType ChangeResourceType
	Action       string
}

func NewScheduleChangeListener(useCase in.ScheduleViewerUseCase, cfg *config.Config, logger out.LoggerPort) (*ScheduleChangeListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &ScheduleChangeListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *ScheduleChangeListener) Start(ctx context.Context) error {
	if err := l.startScheduleChangeQueue(ctx); err != nil {
		return err
	}

	l.logger.Info("schedule_change.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.Queue,
	})

	return nil
}

func (l *ScheduleChangeListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// clinic.schedule-viewer.appointment.store
// clinic.schedule-viewer.appointment.invalidate
// clinic.schedule-viewer.doctor.invalidate
// clinic.schedule-viewer._all_.invalidate
func (l *ScheduleChangeListener) parseChangeMessageRoutingKey(msg amqp.Delivery) (ChangeMessageRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 4 {
		return ChangeMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return ChangeMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: ChangeResourceType(parts[2]),
		Action:       parts[3],
	}, nil
}
