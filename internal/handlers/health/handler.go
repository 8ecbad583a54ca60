package health

import (
	"context"
	"net/http"
	"time"

	"wehouse/infras/otel"
	"wehouse/shared/constant"
	"wehouse/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	messageWelcome = "Welcome to WeHouse API"
	messageHealthy = "Service is healthy"

	statusUp   = "up"
	statusDown = "down"

	pingTimeout = 2 * time.Second
)

// Pinger is anything the health check can reach over the network.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	database Pinger
	cache    Pinger
	otel     otel.Otel
}

func New(database Pinger, cache Pinger, otel otel.Otel) Handler {
	return Handler{
		database: database,
		cache:    cache,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Welcome)
	router.Get("/health", handler.Health)
}

// Welcome answers the API root.
// @Summary Welcome message
// @Tags Service
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (handler *Handler) Welcome(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, messageWelcome)
}

// Health pings the database and the cache.
// @Summary Health check
// @Tags Service
// @Produce json
// @Success 200 {object} response.Envelope{data=map[string]string}
// @Failure 503 {object} response.Envelope
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	checks := map[string]string{
		"database": check(ctx, "database", handler.database),
		"cache":    check(ctx, "cache", handler.cache),
	}

	scope.SetAttributes(map[string]any{
		"health.database": checks["database"],
		"health.cache":    checks["cache"],
	})

	for _, status := range checks {
		if status == statusDown {
			response.WithUnhealthy(writer)

			return
		}
	}

	response.WithSuccess(writer, http.StatusOK, messageHealthy, checks)
}

func check(ctx context.Context, name string, pinger Pinger) string {
	if pinger == nil {
		return statusDown
	}

	if err := pinger.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("dependency", name).Msg("health check failed")

		return statusDown
	}

	return statusUp
}
