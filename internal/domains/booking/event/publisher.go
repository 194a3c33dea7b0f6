package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"strconv"
	"time"

	"eventbook/config"
	"eventbook/infras/kafka"
	"eventbook/infras/otel"
	"eventbook/internal/domains/booking/model"
	"eventbook/internal/domains/booking/model/dto"
	"eventbook/shared/background"
	"eventbook/shared/constant"
	"eventbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingUpdated   = "booking.updated"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload written to the booking topic.
type BookingEvent struct {
	Type       string              `json:"type"`
	BookingID  int64               `json:"booking_id"`
	Booking    dto.BookingResponse `json:"booking"`
	OccurredAt string              `json:"occurred_at"`
}

type Publisher interface {
	// Publish sends the event in the background. Delivery failures are logged only.
	Publish(ctx context.Context, eventType string, booking model.Booking)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
	tasks  *background.Group
	now    func() time.Time
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel, tasks *background.Group) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
		tasks:  tasks,
		now:    timezone.Now,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, booking model.Booking) {
	if !p.client.Enabled() {
		return
	}

	evt := BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		OccurredAt: p.now().Format(constant.DateFormat),
	}
	evt.Booking.FromModel(booking)

	p.tasks.Go(func() {
		c := context.WithoutCancel(ctx)

		c, scope := p.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		err := p.client.SendMessages(c, p.cfg.Kafka.Topic.Booking, kafka.Message{
			Key:   strconv.FormatInt(booking.ID, 10),
			Value: evt,
		})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("type", eventType).Int64("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	})
}
