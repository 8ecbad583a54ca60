package router

import (
	"net/http"

	"wehouse/config"
	"wehouse/internal/handlers/bannedcustomer"
	"wehouse/internal/handlers/health"
	"wehouse/internal/handlers/room"
	"wehouse/transport/http/middleware"
	"wehouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type DomainHandlers struct {
	Health         health.Handler
	Room           room.Handler
	BannedCustomer bannedcustomer.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

// SetupRoutes registers the service routes at the root and the domain routes
// under /api. The rate limiter only guards /api.
func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	r.DomainHandlers.Health.Router(router)

	if r.Config.Metrics.Enable {
		router.Method(http.MethodGet, r.Config.Metrics.Path, promhttp.Handler())
	}

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.BannedCustomer.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
