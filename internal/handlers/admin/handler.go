package admin

import (
	"net/http"
	"strconv"

	"eventbook/infras/otel"
	"eventbook/internal/domains/admin/service"
	bookingModel "eventbook/internal/domains/booking/model"
	bookingDto "eventbook/internal/domains/booking/model/dto"
	"eventbook/shared/constant"
	"eventbook/shared/validator"
	"eventbook/transport/http/response"
	"eventbook/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const dashboardPath = "/admin/dashboard"

type Handler struct {
	service  service.Admin
	renderer view.Renderer
	otel     otel.Otel
}

func New(service service.Admin, renderer view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.Dashboard)
		routerGroup.Get("/export", handler.Export)
		routerGroup.Get("/edit/{id}", handler.EditBooking)
		routerGroup.Post("/update/{id}", handler.UpdateBooking)
		routerGroup.Get("/cancel/{id}", handler.CancelBooking)
	})
}

// Dashboard renders every booking with totals.
// @Summary Admin dashboard
// @Tags Admin
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Internal server error"
// @Router /admin/dashboard [get]
// @Security BasicAuth
func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch admin data")

		response.WithTextError(writer, err)

		return
	}

	handler.render(writer, view.AdminDashboard, res)
}

// Export downloads every booking as CSV.
// @Summary Export bookings
// @Tags Admin
// @Produce text/csv
// @Success 200 {file} file "bookings-export.csv"
// @Failure 500 {string} string "Internal server error"
// @Router /admin/export [get]
// @Security BasicAuth
func (handler *Handler) Export(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	file, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithTextError(writer, err)

		return
	}

	response.WithAttachment(writer, constant.ContentTypeCSV, file.FileName, file.Content)
}

// EditBooking renders the edit form of one booking.
// @Summary Edit booking form
// @Tags Admin
// @Produce html
// @Param id path int true "Booking ID"
// @Success 200 {string} string "HTML page"
// @Failure 400 {string} string "Invalid booking id"
// @Failure 404 {string} string "Booking not found"
// @Failure 500 {string} string "Internal server error"
// @Router /admin/edit/{id} [get]
// @Security BasicAuth
func (handler *Handler) EditBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBooking")
	defer scope.End()

	id, ok := bookingID(writer, request)
	if !ok {
		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to fetch booking for edit")

		response.WithTextError(writer, err)

		return
	}

	handler.render(writer, view.EditBooking, booking)
}

// UpdateBooking saves the edit form and returns to the dashboard.
// @Summary Update booking
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param id path int true "Booking ID"
// @Param request formData dto.UpdateBookingRequest true "Booking fields"
// @Success 302 {string} string "Redirect to /admin/dashboard"
// @Failure 400 {string} string "The selected date is already booked by another event"
// @Failure 404 {string} string "Booking not found"
// @Failure 500 {string} string "Internal server error"
// @Router /admin/update/{id} [post]
// @Security BasicAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, ok := bookingID(writer, request)
	if !ok {
		return
	}

	req := bookingDto.UpdateBookingRequest{}

	if err := validator.Bind(request, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse update form")

		response.WithTextError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		response.WithTextError(writer, err)

		return
	}

	response.WithRedirect(writer, request, dashboardPath)
}

// CancelBooking deletes a booking and returns to the dashboard.
// @Summary Cancel booking
// @Tags Admin
// @Produce plain
// @Param id path int true "Booking ID"
// @Success 302 {string} string "Redirect to /admin/dashboard"
// @Failure 400 {string} string "Invalid booking id"
// @Failure 500 {string} string "Internal server error"
// @Router /admin/cancel/{id} [get]
// @Security BasicAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, ok := bookingID(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to cancel booking")

		response.WithTextError(writer, err)

		return
	}

	response.WithRedirect(writer, request, dashboardPath)
}

func (handler *Handler) render(writer http.ResponseWriter, name string, data any) {
	page, err := handler.renderer.Render(name, data)
	if err != nil {
		response.WithText(writer, http.StatusInternalServerError, constant.ResponseErrorInternal)

		return
	}

	response.WithHTML(writer, http.StatusOK, page)
}

func bookingID(writer http.ResponseWriter, request *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		response.WithTextError(writer, bookingModel.ErrInvalidBookingID)

		return 0, false
	}

	return id, true
}
