package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wehouse/infras/metrics"
	"wehouse/infras/otel"
	"wehouse/internal/domains/room/model"
	"wehouse/internal/domains/room/model/dto"
	"wehouse/internal/domains/room/repository"
	"wehouse/shared"
	"wehouse/shared/constant"
	gDto "wehouse/shared/dto"
	"wehouse/shared/failure"
	gRepo "wehouse/shared/repository"
	"wehouse/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	MessageRoomNotFound      = "Room not found"
	MessageInvalidRoomStatus = "Invalid room status"
	MessageNothingToUpdate   = "At least one field must be provided"
	MessageInvalidRoomData   = "Room data violates schema constraints"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) ([]dto.RoomResponse, error)
	// Get resolves a single path segment: identifier-shaped values are looked
	// up by id first and fall back to color, anything else is a color.
	Get(ctx context.Context, idOrColor string) (dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByColor(ctx context.Context, color string) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel()

	stored, err := s.repo.Insert(ctx, room)
	if err != nil {
		log.Error().Err(err).Str("color", room.Color).Msg("failed to create room")

		return res, writeFailure(err, room.Color)
	}

	metrics.IncRoomCreated()

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldColor, SortDir: gDto.SortDirAsc}

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Get(ctx context.Context, idOrColor string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.IsIdentifier(idOrColor) {
		res, err = s.GetByID(ctx, idOrColor)
		if !failure.IsNotFound(err) {
			return res, err
		}
	}

	return s.GetByColor(ctx, idOrColor)
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIdentifier(id) {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	return s.get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// GetByColor matches case-insensitively. When several rooms differ only in
// case, the exact match wins, then the oldest room.
func (s *serviceImpl) GetByColor(ctx context.Context, color string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByColor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	color = strings.TrimSpace(color)
	if color == constant.Empty {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	rooms, err := s.repo.GetAll(ctx, params, filterByColor(color))
	if err != nil {
		log.Error().Err(err).Str("color", color).Msg("failed to get room by color")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if len(rooms) == 0 {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	room := rooms[0]

	for _, candidate := range rooms {
		if candidate.Color == color {
			room = candidate

			break
		}
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, filter gDto.FilterGroup) (res dto.RoomResponse, err error) {
	room, err := s.repo.Get(ctx, filter)
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIdentifier(id) {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(MessageNothingToUpdate) //nolint:wrapcheck
	}

	req.Normalize()

	color := constant.Empty
	if req.Color != nil {
		color = *req.Color
	}

	return s.update(ctx, id, shared.TransformFields(req), color)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsValidStatus(status) {
		return res, failure.BadRequestFromString(MessageInvalidRoomStatus) //nolint:wrapcheck
	}

	if !validator.IsIdentifier(id) {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	res, err = s.update(ctx, id, shared.TransformFields(dto.UpdateRoomRequest{Status: &status}), constant.Empty)
	if err != nil {
		return res, err
	}

	metrics.IncRoomStatusChange(status)

	return res, nil
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any, color string) (res dto.RoomResponse, err error) {
	room, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		return res, writeFailure(err, color)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIdentifier(id) {
		return failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(MessageRoomNotFound) //nolint:wrapcheck
	}

	return nil
}

func filterByColor(color string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldColor,
				Value:    color,
				Operator: gDto.FilterOperatorEqualFold,
				Table:    model.TableName,
			},
		},
	}
}

// writeFailure turns store constraint errors on create and update into
// client failures; anything else is passed through wrapped.
func writeFailure(err error, color string) error {
	switch {
	case errors.Is(err, gRepo.ErrDuplicateKey):
		return failure.DuplicateKey(fmt.Sprintf("Room with color '%s' already exists", color)) //nolint:wrapcheck
	case errors.Is(err, gRepo.ErrConstraint), errors.Is(err, gRepo.ErrInvalidValue):
		return failure.BadRequestFromString(MessageInvalidRoomData) //nolint:wrapcheck
	default:
		return fmt.Errorf("failed to write room: %w", err)
	}
}
