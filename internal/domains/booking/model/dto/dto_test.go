package dto_test

import (
	"testing"
	"time"

	"eventbook/internal/domains/booking/model"
	"eventbook/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		EventDate:     "2025-12-01",
		EventType:     " Wedding ",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: strPtr("  "),
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), booking.EventDate)
	assert.Equal(t, "Wedding", booking.EventType)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, "jane@example.com", booking.CustomerEmail)
	assert.Nil(t, booking.CustomerPhone)
	assert.Zero(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestCreateBookingRequest_ToModelTimestamp(t *testing.T) {
	req := dto.CreateBookingRequest{
		EventDate:     "2025-12-01T18:30:00-05:00",
		EventType:     "Party",
		CustomerName:  "John",
		CustomerEmail: "john@example.com",
		CustomerPhone: strPtr("555-0100"),
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), booking.EventDate)
	require.NotNil(t, booking.CustomerPhone)
	assert.Equal(t, "555-0100", *booking.CustomerPhone)
}

func TestCreateBookingRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		EventDate:     "next friday",
		EventType:     "Party",
		CustomerName:  "John",
		CustomerEmail: "john@example.com",
	}

	_, err := req.ToModel()
	assert.ErrorIs(t, err, model.ErrInvalidEventDate)
}

func TestUpdateBookingRequest_ParseEventDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantOK  bool
		wantErr error
	}{
		{name: "blank keeps current date", value: " "},
		{name: "date only", value: "2026-03-15", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "datetime-local input", value: "2026-03-15T10:00", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "invalid", value: "15/03/2026", wantErr: model.ErrInvalidEventDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateBookingRequest{EventDate: tt.value}

			got, ok, err := req.ParseEventDate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateBookingRequest_ToFields(t *testing.T) {
	req := dto.UpdateBookingRequest{
		EventType:     "Conference",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: strPtr(""),
	}

	fields := req.ToFields(nil)
	assert.NotContains(t, fields, model.FieldEventDate)
	assert.Equal(t, "Conference", fields[model.FieldEventType])
	assert.Nil(t, fields[model.FieldCustomerPhone])

	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	req.CustomerPhone = strPtr("555-0100")

	fields = req.ToFields(&date)
	assert.Equal(t, "2026-01-02", fields[model.FieldEventDate])
	assert.Equal(t, strPtr("555-0100"), fields[model.FieldCustomerPhone])
}

func TestBookingsResponse_FromModels(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	models := []model.Booking{
		{
			ID:            1,
			EventDate:     time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			EventType:     "Wedding",
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CreatedAt:     created,
		},
	}

	var res dto.BookingsResponse
	res.FromModels(models)

	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, "2025-12-01", res[0].EventDate)
	assert.Nil(t, res[0].CustomerPhone)
	assert.NotEmpty(t, res[0].CreatedAt)

	var empty dto.BookingsResponse
	empty.FromModels(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
