package dto

import (
	"strings"
	"time"

	"eventbook/internal/domains/booking/model"
	"eventbook/shared/constant"
	"eventbook/shared/timezone"
)

type CreateBookingRequest struct {
	EventDate     string  `form:"event_date"     json:"event_date"     validate:"required,notblank"`
	EventType     string  `form:"event_type"     json:"event_type"     validate:"required,notblank"`
	CustomerName  string  `form:"customer_name"  json:"customer_name"  validate:"required,notblank"`
	CustomerEmail string  `form:"customer_email" json:"customer_email" validate:"required,notblank"`
	CustomerPhone *string `form:"customer_phone" json:"customer_phone" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	eventDate, err := timezone.ParseDate(c.EventDate)
	if err != nil {
		return model.Booking{}, model.ErrInvalidEventDate
	}

	return model.Booking{
		EventDate:     eventDate,
		EventType:     strings.TrimSpace(c.EventType),
		CustomerName:  strings.TrimSpace(c.CustomerName),
		CustomerEmail: strings.TrimSpace(c.CustomerEmail),
		CustomerPhone: optional(c.CustomerPhone),
		CreatedAt:     timezone.Now(),
	}, nil
}

type UpdateBookingRequest struct {
	EventDate     string  `form:"event_date"     json:"event_date"     validate:"omitempty"`
	EventType     string  `form:"event_type"     json:"event_type"     validate:"required,notblank"`
	CustomerName  string  `form:"customer_name"  json:"customer_name"  validate:"required,notblank"`
	CustomerEmail string  `form:"customer_email" json:"customer_email" validate:"required,notblank"`
	CustomerPhone *string `form:"customer_phone" json:"customer_phone" validate:"omitempty"`
}

// ParseEventDate returns the requested event date, or ok=false when the caller left it blank.
func (u *UpdateBookingRequest) ParseEventDate() (date time.Time, ok bool, err error) {
	if strings.TrimSpace(u.EventDate) == constant.Empty {
		return time.Time{}, false, nil
	}

	date, err = timezone.ParseDate(u.EventDate)
	if err != nil {
		return time.Time{}, false, model.ErrInvalidEventDate
	}

	return date, true, nil
}

// ToFields lists the columns to overwrite. A blank phone clears the stored one.
func (u *UpdateBookingRequest) ToFields(eventDate *time.Time) map[string]any {
	fields := map[string]any{
		model.FieldEventType:     strings.TrimSpace(u.EventType),
		model.FieldCustomerName:  strings.TrimSpace(u.CustomerName),
		model.FieldCustomerEmail: strings.TrimSpace(u.CustomerEmail),
		model.FieldCustomerPhone: optional(u.CustomerPhone),
	}

	if eventDate != nil {
		fields[model.FieldEventDate] = eventDate.Format(constant.DateOnlyFormat)
	}

	return fields
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	EventDate     string  `json:"event_date"`
	EventType     string  `json:"event_type"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`
	CreatedAt     string  `json:"created_at"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.ID
	b.EventDate = m.EventDate.Format(constant.DateOnlyFormat)
	b.EventType = m.EventType
	b.CustomerName = m.CustomerName
	b.CustomerEmail = m.CustomerEmail
	b.CustomerPhone = m.CustomerPhone
	b.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type BookingsResponse []BookingResponse

func (b *BookingsResponse) FromModels(models []model.Booking) {
	*b = make(BookingsResponse, 0, len(models))

	for _, m := range models {
		var res BookingResponse

		res.FromModel(m)
		*b = append(*b, res)
	}
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == constant.Empty {
		return nil
	}

	return &trimmed
}
