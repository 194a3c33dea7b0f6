package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eventbook/config"
	"eventbook/infras/kafka"
	kafkaMocks "eventbook/infras/kafka/mocks"
	otelMocks "eventbook/infras/otel/mocks"
	"eventbook/internal/domains/booking/event"
	"eventbook/internal/domains/booking/model"
	"eventbook/shared/background"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topic.Booking = "booking-events"

	return cfg
}

func TestPublisher_PublishDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().Enabled().Return(false)

	tasks := background.New()
	publisher := event.New(client, newConfig(), otelMocks.NewOtel(), tasks)
	publisher.Publish(context.Background(), event.TypeBookingCreated, model.Booking{ID: 1})

	assert.NoError(t, tasks.Close())
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "delivered"},
		{name: "delivery failure is swallowed", sendErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			sent := make(chan kafka.Message, 1)

			client.EXPECT().Enabled().Return(true)
			client.EXPECT().
				SendMessages(gomock.Any(), "booking-events", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					sent <- messages[0]

					return tt.sendErr
				})

			ctx, cancel := context.WithCancel(context.Background())
			tasks := background.New()
			publisher := event.New(client, newConfig(), otelMocks.NewOtel(), tasks)
			publisher.Publish(ctx, event.TypeBookingUpdated, model.Booking{
				ID:        42,
				EventDate: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
				EventType: "Gala",
			})
			cancel()

			require.NoError(t, tasks.Close())

			select {
			case msg := <-sent:
				assert.Equal(t, "42", msg.Key)

				raw, err := json.Marshal(msg.Value)
				require.NoError(t, err)

				var evt event.BookingEvent
				require.NoError(t, json.Unmarshal(raw, &evt))
				assert.Equal(t, event.TypeBookingUpdated, evt.Type)
				assert.Equal(t, int64(42), evt.BookingID)
				assert.Equal(t, "2026-02-14", evt.Booking.EventDate)
				assert.NotEmpty(t, evt.OccurredAt)
			default:
				t.Fatal("booking event was not sent before the task group drained")
			}
		})
	}
}
