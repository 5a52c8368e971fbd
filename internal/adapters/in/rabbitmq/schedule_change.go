package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

type ScheduleChangeMessage struct {
	DoctorID    string              `json:"doctor_id"`
	Appointment *domain.Appointment `json:"appointment,omitempty"`
}

func (l *ScheduleChangeListener) startScheduleChangeQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		"#",
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consumeLoop(ctx, msgs)

	return nil
}

func (l *ScheduleChangeListener) consumeLoop(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			// Брокер закрывает канал доставки при обрыве соединения
			if !ok {
				l.logger.Warn("schedule_change.queue.closed", out.LogFields{
					"queue": l.cfg.RabbitMQ.Queue,
				})
				return
			}

			if err := l.processScheduleChangeMessage(ctx, msg); err != nil {
				if nackErr := msg.Nack(false, true); nackErr != nil { // requeue message
					l.logger.Error("schedule_change.message.nack_failed", out.LogFields{
						"error":      nackErr.Error(),
						"routingKey": msg.RoutingKey,
					})
				}
				continue
			}

			if err := msg.Ack(false); err != nil {
				l.logger.Error("schedule_change.message.ack_failed", out.LogFields{
					"error":      err.Error(),
					"routingKey": msg.RoutingKey,
				})
			}
		}
	}
}

func (l *ScheduleChangeListener) processScheduleChangeMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseChangeMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	// Изменение любого ресурса целиком сбрасывает все сетки
	if routingKey.ResourceType == ChangeResourceTypeAll {
		l.useCase.InvalidateAllSchedules(ctx)

		l.logger.Info("schedule_change.message.invalidated_all", out.LogFields{
			"routingKey": msg.RoutingKey,
		})
		return nil
	}

	if routingKey.ResourceType != ChangeResourceTypeAppointment &&
		routingKey.ResourceType != ChangeResourceTypeDoctor {
		return nil
	}

	var msgJson ScheduleChangeMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	doctorID := msgJson.DoctorID
	if doctorID == "" && msgJson.Appointment != nil {
		doctorID = msgJson.Appointment.DoctorID
	}
	if doctorID == "" {
		l.logger.Warn("schedule_change.message.no_doctor", out.LogFields{
			"routingKey": msg.RoutingKey,
			"msgString":  string(msg.Body),
		})
		return nil
	}

	l.useCase.InvalidateDoctorSchedule(ctx, doctorID)

	l.logger.Info("schedule_change.message.invalidated", out.LogFields{
		"doctorId":   doctorID,
		"routingKey": msg.RoutingKey,
	})

	return nil
}
