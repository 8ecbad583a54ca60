package room

import (
	"net/http"

	"wehouse/infras/otel"
	"wehouse/internal/domains/room/model/dto"
	"wehouse/internal/domains/room/service"
	"wehouse/shared/constant"
	"wehouse/shared/validator"
	"wehouse/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	messageCreated       = "Room created successfully"
	messageListed        = "Rooms retrieved successfully"
	messageRetrieved     = "Room retrieved successfully"
	messageUpdated       = "Room updated successfully"
	messageDeleted       = "Room deleted successfully"
	messageStatusUpdated = "Room status updated successfully"

	messageCreateFailed       = "Failed to create room"
	messageListFailed         = "Failed to fetch rooms"
	messageFetchFailed        = "Failed to fetch room"
	messageUpdateFailed       = "Failed to update room"
	messageDeleteFailed       = "Failed to delete room"
	messageStatusUpdateFailed = "Failed to update room status"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{idOrColor}", handler.GetRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room. The color must be unique.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} response.Envelope{data=dto.RoomResponse} "Room created successfully"
// @Failure 400 {object} response.Envelope
// @Router /api/rooms [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes)
	if err := validator.Decode(body, &req, dto.CreateRoomRules); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid create room request")

		response.WithError(writer, err, http.StatusBadRequest, messageCreateFailed)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err, http.StatusBadRequest, messageCreateFailed)

		return
	}

	scope.AddEvent("Room created with id " + res.ID)

	response.WithSuccess(writer, http.StatusCreated, messageCreated, res)
}

// GetRooms lists every room ordered by color.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Success 200 {object} response.Envelope{data=[]dto.RoomResponse} "Rooms retrieved successfully"
// @Failure 500 {object} response.Envelope
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err, http.StatusInternalServerError, messageListFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageListed, res)
}

// GetRoom retrieves a room by id or by color.
// @Summary Get a room
// @Description Identifier-shaped values are looked up by id first, then by color. Color matching ignores case.
// @Tags Room
// @Produce json
// @Param idOrColor path string true "Room id or color"
// @Success 200 {object} response.Envelope{data=dto.RoomResponse} "Room retrieved successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/rooms/{idOrColor} [get]
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	idOrColor := chi.URLParam(request, constant.RequestParamIDOrColor)
	scope.SetAttribute("room.lookup", idOrColor)

	res, err := handler.service.Get(ctx, idOrColor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("idOrColor", idOrColor).Msg("failed to get room")

		response.WithError(writer, err, http.StatusInternalServerError, messageFetchFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageRetrieved, res)
}

// UpdateRoom applies a partial update to a room.
// @Summary Update a room
// @Description Only the supplied fields change. PUT and PATCH behave the same.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room id"
// @Param request body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.RoomResponse} "Room updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/rooms/{id} [put]
// @Router /api/rooms/{id} [patch]
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateRoomRequest

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes)
	if err := validator.Decode(body, &req, dto.UpdateRoomRules); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid update room request")

		response.WithError(writer, err, http.StatusBadRequest, messageUpdateFailed)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		response.WithError(writer, err, http.StatusBadRequest, messageUpdateFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageUpdated, res)
}

// DeleteRoom removes a room.
// @Summary Delete a room
// @Tags Room
// @Param id path string true "Room id"
// @Success 204 "Room deleted successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		response.WithError(writer, err, http.StatusInternalServerError, messageDeleteFailed)

		return
	}

	scope.AddEvent(messageDeleted)

	response.WithNoContent(writer)
}

// UpdateRoomStatus changes the status of a room.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room id"
// @Param request body dto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} response.Envelope{data=dto.RoomResponse} "Room status updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/rooms/{id}/status [patch]
func (handler *Handler) UpdateRoomStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateRoomStatusRequest

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes)
	if err := validator.Decode(body, &req, dto.UpdateRoomStatusRules); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid room status request")

		response.WithError(writer, err, http.StatusBadRequest, messageStatusUpdateFailed)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, *req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update room status")

		response.WithError(writer, err, http.StatusBadRequest, messageStatusUpdateFailed)

		return
	}

	response.WithSuccess(writer, http.StatusOK, messageStatusUpdated, res)
}
