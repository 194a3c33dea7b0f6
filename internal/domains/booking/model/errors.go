package model

import (
	"net/http"

	"eventbook/shared/failure"
)

var (
	ErrMissingFields     = &failure.Failure{Code: http.StatusBadRequest, Message: "Missing required fields"}
	ErrInvalidEventDate  = &failure.Failure{Code: http.StatusBadRequest, Message: "Invalid event date"}
	ErrDateRequired      = &failure.Failure{Code: http.StatusBadRequest, Message: "Date query parameter is required"}
	ErrDateAlreadyBooked = &failure.Failure{Code: http.StatusBadRequest, Message: "Date already booked"}
	ErrDateTakenByOther  = &failure.Failure{Code: http.StatusBadRequest, Message: "The selected date is already booked by another event"}
	ErrBookingNotFound   = &failure.Failure{Code: http.StatusNotFound, Message: "Booking not found"}
	ErrInvalidBookingID  = &failure.Failure{Code: http.StatusBadRequest, Message: "Invalid booking id"}
)
