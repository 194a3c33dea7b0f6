package dto

import (
	"time"

	bookingModel "eventbook/internal/domains/booking/model"
	"eventbook/shared/constant"
	"eventbook/shared/timezone"
)

type Stats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

// BookingView is a booking formatted for the admin pages.
type BookingView struct {
	ID             int64
	EventDate      string
	EventDateValue string
	EventType      string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	CreatedAt      string
	Upcoming       bool
}

func (b *BookingView) FromModel(m bookingModel.Booking, today time.Time) {
	b.ID = m.ID
	b.EventDate = m.EventDate.Format(constant.LocalDateFormat)
	b.EventDateValue = m.EventDate.Format(constant.DateOnlyFormat)
	b.EventType = m.EventType
	b.CustomerName = m.CustomerName
	b.CustomerEmail = m.CustomerEmail
	b.CreatedAt = timezone.Format(m.CreatedAt, constant.LocalDateFormat)
	b.Upcoming = m.IsUpcoming(today)

	b.CustomerPhone = constant.Empty
	if m.CustomerPhone != nil {
		b.CustomerPhone = *m.CustomerPhone
	}
}

type DashboardResponse struct {
	Bookings []BookingView
	Stats    Stats
}

func (d *DashboardResponse) FromModels(models []bookingModel.Booking, today time.Time) {
	d.Bookings = make([]BookingView, 0, len(models))
	d.Stats = Stats{Total: len(models)}

	for _, m := range models {
		var view BookingView

		view.FromModel(m, today)

		if view.Upcoming {
			d.Stats.Upcoming++
		}

		d.Bookings = append(d.Bookings, view)
	}

	d.Stats.Past = d.Stats.Total - d.Stats.Upcoming
}

// ExportFile is a rendered CSV export.
type ExportFile struct {
	FileName string
	Content  []byte
}
