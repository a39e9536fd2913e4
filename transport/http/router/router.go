package router

import (
	"minihotel/internal/handlers/auth"
	"minihotel/internal/handlers/booking"
	"minihotel/internal/handlers/customer"
	"minihotel/internal/handlers/photo"
	"minihotel/internal/handlers/room"
	"minihotel/internal/handlers/roomtype"
	"minihotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Customer customer.Handler
	Booking  booking.Handler
	Photo    photo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.Auth, r.middleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Photo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     middleware,
	}
}
