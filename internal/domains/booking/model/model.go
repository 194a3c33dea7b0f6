package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldEventDate     = "event_date"
	FieldEventType     = "event_type"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldCreatedAt     = "created_at"
)

// Booking reserves one calendar date. EventDate is always a date at midnight UTC.
type Booking struct {
	ID            int64     `db:"id"             generated:"true"`
	EventDate     time.Time `db:"event_date"`
	EventType     string    `db:"event_type"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone *string   `db:"customer_phone"`
	CreatedAt     time.Time `db:"created_at"`
}

// IsUpcoming reports whether the event takes place on or after today.
func (b Booking) IsUpcoming(today time.Time) bool {
	return !b.EventDate.Before(today)
}
