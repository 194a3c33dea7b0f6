package booking

import (
	"net/http"

	"eventbook/infras/otel"
	"eventbook/internal/domains/booking/model/dto"
	"eventbook/internal/domains/booking/service"
	"eventbook/shared/constant"
	"eventbook/shared/validator"
	"eventbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageBookingConfirmed = "Booking confirmed"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/book", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Book a date
// @Description Reserve a calendar date for an event. Each date can be booked once.
// @Tags Booking
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Message "Missing required fields or date already booked"
// @Failure 500 {object} response.Message
// @Router /book [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Bind(request, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for " + booking.EventDate)

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{
		Message: messageBookingConfirmed,
		Booking: booking,
	})
}

// GetBookings lists every booking.
// @Summary List bookings
// @Description Retrieve all bookings ordered by event date.
// @Tags Booking
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} response.Message
// @Router /book [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
