package router

import (
	"net/http"

	"eventbook/internal/handlers/admin"
	"eventbook/internal/handlers/availability"
	"eventbook/internal/handlers/booking"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Admin        admin.Handler
}

type Router struct {
	DomainHandlers  DomainHandlers
	AdminMiddleware []func(http.Handler) http.Handler
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Availability.Router(router)
	r.DomainHandlers.Booking.Router(router)

	router.Group(func(adminGroup chi.Router) {
		adminGroup.Use(r.AdminMiddleware...)
		r.DomainHandlers.Admin.Router(adminGroup)
	})
}

func New(domainHandlers DomainHandlers, adminMiddleware ...func(http.Handler) http.Handler) Router {
	return Router{
		DomainHandlers:  domainHandlers,
		AdminMiddleware: adminMiddleware,
	}
}
