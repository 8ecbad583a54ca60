package bannedcustomer

import (
	"net/http"

	"wehouse/infras/otel"
	"wehouse/internal/domains/bannedcustomer/model/dto"
	"wehouse/internal/domains/bannedcustomer/service"
	"wehouse/shared/constant"
	"wehouse/shared/validator"
	"wehouse/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	messageBanned    = "Customer banned successfully"
	messageListed    = "Banned customers retrieved successfully"
	messageRetrieved = "Ban record retrieved successfully"

	messageBanFailed    = "Failed to ban customer"
	messageListFailed   = "Failed to fetch banned customers"
	messageFetchFailed  = "Failed to fetch ban record"
	messageDeleteFailed = "Failed to remove ban record"
)

type Handler struct {
	service service.BannedCustomer
	otel    otel.Otel
}

func New(service service.BannedCustomer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/banned-customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BanCustomer)
		routerGroup.Get("/", handler.GetBannedCustomers)
		routerGroup.Get("/{id}", handler.GetBannedCustomer)
		routerGroup.Delete("/{id}", handler.RemoveBan)
	})
}

// BanCustomer records a new ban.
// @Summary Ban a customer
// @Tags BannedCustomer
// @Accept json
// @Produce json
// @Param request body dto.CreateBannedCustomerRequest true "Ban details"
// @Success 201 {object} response.Envelope{data=dto.BannedCustomerResponse} "Customer banned successfully"
// @Failure 400 {object} response.Envelope
// @Router /api/banned-customers [post]
func (handler *Handler) BanCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BanCustomer")
	defer scope.End()

	var req dto.CreateBannedCustomerRequest

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes)
	if err := validator.Decode(body, &req, dto.CreateBannedCustomerRules); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid ban request")

		response.WithError(writer, err, http.StatusBadRequest, messageBanFailed)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to ban customer")

		response.WithError(writer, err, http.StatusBadRequest, messageBanFailed)

		return
	}

	response.WithSuccess(writer, http.StatusCreated, messageBanned, res)
}

// GetBannedCustomers lists ban records, newest first.
// @Summary List banned customers
// @Tags BannedCustomer
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Records per page" default(10)
// @Success 200 {object} response.Envelope{data=dto.GetBannedCustomersResponse} "Banned customers retrieved successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/banned-customers [get]
func (handler *Handler) GetBannedCustomers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBannedCustomers")
	defer scope.End()

	params, err := validator.Pagination(request.URL.Query())
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err, http.StatusBadRequest, messageListFailed)

		return
	}

	scope.SetAttributes(map[string]any{
		"pagination.page":  params.Page,
		"pagination.limit": params.Limit,
	})

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banned customers")

		response.WithError(writer, err, http.StatusInternalServerError, messageListFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageListed, res)
}

// GetBannedCustomer retrieves one ban record.
// @Summary Get a ban record
// @Tags BannedCustomer
// @Produce json
// @Param id path string true "Ban record id"
// @Success 200 {object} response.Envelope{data=dto.BannedCustomerResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/banned-customers/{id} [get]
func (handler *Handler) GetBannedCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBannedCustomer")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.Identifier(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err, http.StatusBadRequest, messageFetchFailed)

		return
	}

	res, err := handler.service.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get ban record")

		response.WithError(writer, err, http.StatusInternalServerError, messageFetchFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageRetrieved, res)
}

// RemoveBan deletes a ban record.
// @Summary Remove a ban
// @Tags BannedCustomer
// @Param id path string true "Ban record id"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/banned-customers/{id} [delete]
func (handler *Handler) RemoveBan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBan")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.Identifier(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err, http.StatusBadRequest, messageDeleteFailed)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to remove ban record")

		response.WithError(writer, err, http.StatusInternalServerError, messageDeleteFailed)

		return
	}

	response.WithNoContent(writer)
}
