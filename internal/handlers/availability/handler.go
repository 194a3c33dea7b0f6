package availability

import (
	"net/http"

	"eventbook/infras/otel"
	"eventbook/internal/domains/availability/service"
	"eventbook/shared/constant"
	"eventbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.CheckAvailability)
}

// CheckAvailability reports whether a date can still be booked.
// @Summary Check date availability
// @Description Check whether no booking exists for the given calendar date.
// @Tags Availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.Check(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
