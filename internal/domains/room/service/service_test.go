package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wehouse/infras/otel/mocks"
	roomMocks "wehouse/internal/domains/room/mocks"
	"wehouse/internal/domains/room/model"
	"wehouse/internal/domains/room/model/dto"
	"wehouse/internal/domains/room/service"
	"wehouse/shared/constant"
	gDto "wehouse/shared/dto"
	"wehouse/shared/failure"
	gModel "wehouse/shared/model"
	gRepo "wehouse/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomID = "550e8400-e29b-41d4-a716-446655440000"

func ptr[T any](v T) *T {
	return &v
}

func blueRoom() model.Room {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	return model.Room{
		ID:            roomID,
		Color:         "Blue",
		Capacity:      2,
		Type:          model.TypePrivate,
		TwoPersonBeds: 0,
		OnePersonBeds: 2,
		RentPrice:     1400,
		Status:        model.StatusReadyForReservation,
		Metadata:      gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

func blueRequest() dto.CreateRoomRequest {
	return dto.CreateRoomRequest{
		Color:         ptr("Blue"),
		Capacity:      ptr(2),
		Type:          ptr(model.TypePrivate),
		TwoPersonBeds: ptr(0),
		OnePersonBeds: ptr(2),
		RentPrice:     ptr(1400.0),
		Status:        ptr(model.StatusReadyForReservation),
	}
}

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func assertFailure(t *testing.T, err error, code int, message string) {
	t.Helper()

	fail, ok := failure.As(err)
	require.True(t, ok, "expected a failure, got %v", err)
	assert.Equal(t, code, fail.Code)
	assert.Equal(t, message, fail.Message)
}

// colorFilter matches a case-insensitive literal color lookup.
func colorFilter(color string) gomock.Matcher {
	return gomock.Eq(gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldColor, Value: color, Operator: gDto.FilterOperatorEqualFold, Table: model.TableName},
	}})
}

var colorParams = gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

func idFilter(id string) gomock.Matcher {
	return gomock.Eq(gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}})
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantCode  int
		wantMsg   string
		wantPlain bool
	}{
		{name: "successful creation"},
		{
			name:     "duplicate color",
			repoErr:  fmt.Errorf("insert: %w", gRepo.ErrDuplicateKey),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Room with color 'Blue' already exists",
		},
		{
			name:     "schema constraint",
			repoErr:  fmt.Errorf("insert: %w", gRepo.ErrConstraint),
			wantCode: http.StatusBadRequest,
			wantMsg:  service.MessageInvalidRoomData,
		},
		{
			name:     "value the store cannot hold",
			repoErr:  fmt.Errorf("insert: %w", gRepo.ErrInvalidValue),
			wantCode: http.StatusBadRequest,
			wantMsg:  service.MessageInvalidRoomData,
		},
		{
			name:      "store error",
			repoErr:   errors.New("connection refused"),
			wantPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)

			var inserted model.Room

			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
					inserted = room

					if tt.repoErr != nil {
						return model.Room{}, tt.repoErr
					}

					return room, nil
				})

			res, err := svc.Create(context.Background(), blueRequest())

			switch {
			case tt.wantPlain:
				require.Error(t, err)
				_, isFailure := failure.As(err)
				assert.False(t, isFailure)
			case tt.wantCode != 0:
				assertFailure(t, err, tt.wantCode, tt.wantMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, inserted.ID, res.ID)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "Blue", res.Color)
				assert.Equal(t, 2, res.Capacity)
				assert.Equal(t, model.TypePrivate, res.Type)
				assert.Equal(t, 0, res.TwoPersonBeds)
				assert.Equal(t, 2, res.OnePersonBeds)
				assert.InDelta(t, 1400.0, res.RentPrice, 0)
				assert.Equal(t, model.StatusReadyForReservation, res.Status)
				assert.NotEmpty(t, res.CreatedAt)
				assert.NotEmpty(t, res.UpdatedAt)
			}
		})
	}
}

func TestRoomService_CreateThenGet(t *testing.T) {
	svc, mockRepo := newService(t)

	storedAt := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	req := blueRequest()
	req.Color = ptr("  Blue  ")
	req.RentPrice = ptr(1400.555)

	var stored model.Room

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
			assert.Equal(t, "Blue", room.Color)

			stored = room
			stored.CreatedAt = storedAt
			stored.UpdatedAt = storedAt

			return stored, nil
		})

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Blue", created.Color)
	assert.InDelta(t, 1400.555, created.RentPrice, 0)

	var wantMetadata gDto.Metadata
	wantMetadata.FromModel(stored.Metadata)
	assert.Equal(t, wantMetadata, created.Metadata, "create answers with the stored row")

	mockRepo.EXPECT().Get(gomock.Any(), idFilter(created.ID)).Return(stored, nil)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo := newService(t)

	red := blueRoom()
	red.Color = "Red"

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldColor, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
		Return([]model.Room{blueRoom(), red}, nil)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Blue", res[0].Color)
	assert.Equal(t, "Red", res[1].Color)
	assert.Equal(t, "2024-05-01T10:00:00Z", res[0].CreatedAt)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err = svc.GetAll(context.Background())
	assert.Error(t, err)
}

func TestRoomService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), idFilter(roomID)).Return(blueRoom(), nil)

		res, err := svc.GetByID(context.Background(), roomID)
		require.NoError(t, err)
		assert.Equal(t, roomID, res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), idFilter(roomID)).Return(model.Room{}, gRepo.ErrNotFound)

		_, err := svc.GetByID(context.Background(), roomID)
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("invalid identifier is not found without a store call", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetByID(context.Background(), "invalid-id")
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("timeout"))

		_, err := svc.GetByID(context.Background(), roomID)
		require.Error(t, err)
		assert.False(t, failure.IsNotFound(err))
	})
}

func TestRoomService_GetByColor(t *testing.T) {
	t.Run("lookup is case-insensitive and literal", func(t *testing.T) {
		svc, mockRepo := newService(t)

		yellow := blueRoom()
		yellow.Color = "Yellow"

		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("yellow")).Return([]model.Room{yellow}, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("YELLOW")).Return([]model.Room{yellow}, nil)

		res, err := svc.GetByColor(context.Background(), "yellow")
		require.NoError(t, err)
		assert.Equal(t, "Yellow", res.Color)

		res, err = svc.GetByColor(context.Background(), "YELLOW")
		require.NoError(t, err)
		assert.Equal(t, "Yellow", res.Color)
	})

	t.Run("input is trimmed before lookup", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("Blue")).Return([]model.Room{blueRoom()}, nil)

		res, err := svc.GetByColor(context.Background(), "  Blue\t")
		require.NoError(t, err)
		assert.Equal(t, "Blue", res.Color)
	})

	t.Run("exact case wins over older case variants", func(t *testing.T) {
		svc, mockRepo := newService(t)

		upper := blueRoom()
		upper.ID = "11111111-1111-4111-8111-111111111111"
		upper.Color = "Yellow"

		lower := blueRoom()
		lower.ID = "22222222-2222-4222-8222-222222222222"
		lower.Color = "yellow"

		rooms := []model.Room{upper, lower}

		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("yellow")).Return(rooms, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("Yellow")).Return(rooms, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("YELLOW")).Return(rooms, nil)

		res, err := svc.GetByColor(context.Background(), "yellow")
		require.NoError(t, err)
		assert.Equal(t, lower.ID, res.ID)

		res, err = svc.GetByColor(context.Background(), "Yellow")
		require.NoError(t, err)
		assert.Equal(t, upper.ID, res.ID)

		res, err = svc.GetByColor(context.Background(), "YELLOW")
		require.NoError(t, err)
		assert.Equal(t, upper.ID, res.ID, "oldest room when no case matches exactly")
	})

	t.Run("blank input is not found without a store call", func(t *testing.T) {
		svc, _ := newService(t)

		for _, color := range []string{"", "   ", "\t"} {
			_, err := svc.GetByColor(context.Background(), color)
			assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
		}
	})

	t.Run("pattern characters are passed through as a literal", func(t *testing.T) {
		svc, mockRepo := newService(t)

		for _, color := range []string{"Yellow@#$%", "Yel.*", "%", "^Yellow$"} {
			mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter(color)).Return([]model.Room{}, nil)

			_, err := svc.GetByColor(context.Background(), color)
			assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
		}
	})

	t.Run("store error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("Blue")).Return(nil, errors.New("timeout"))

		_, err := svc.GetByColor(context.Background(), "Blue")
		require.Error(t, err)
		assert.False(t, failure.IsNotFound(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("identifier found by id", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), idFilter(roomID)).Return(blueRoom(), nil)

		res, err := svc.Get(context.Background(), roomID)
		require.NoError(t, err)
		assert.Equal(t, roomID, res.ID)
	})

	t.Run("identifier falls back to color", func(t *testing.T) {
		svc, mockRepo := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), idFilter(roomID)).Return(model.Room{}, gRepo.ErrNotFound),
			mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter(roomID)).Return([]model.Room{}, nil),
		)

		_, err := svc.Get(context.Background(), roomID)
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("store error on id lookup is not masked", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), idFilter(roomID)).Return(model.Room{}, errors.New("timeout"))

		_, err := svc.Get(context.Background(), roomID)
		require.Error(t, err)
		assert.False(t, failure.IsNotFound(err))
	})

	t.Run("anything else is a color", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any(), colorParams, colorFilter("blue")).Return([]model.Room{blueRoom()}, nil)

		res, err := svc.Get(context.Background(), "blue")
		require.NoError(t, err)
		assert.Equal(t, "Blue", res.Color)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc, mockRepo := newService(t)

		updated := blueRoom()
		updated.RentPrice = 1500

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), idFilter(roomID)).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (model.Room, error) {
				assert.InDelta(t, 1500.0, fields[model.FieldRentPrice], 0)
				assert.Contains(t, fields, constant.FieldUpdatedAt)
				assert.NotContains(t, fields, model.FieldColor)

				return updated, nil
			})

		res, err := svc.Update(context.Background(), roomID, dto.UpdateRoomRequest{RentPrice: ptr(1500.0)})
		require.NoError(t, err)
		assert.InDelta(t, 1500.0, res.RentPrice, 0)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, gRepo.ErrNotFound)

		_, err := svc.Update(context.Background(), roomID, dto.UpdateRoomRequest{Capacity: ptr(3)})
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(context.Background(), "nope", dto.UpdateRoomRequest{Capacity: ptr(3)})
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(context.Background(), roomID, dto.UpdateRoomRequest{})
		assertFailure(t, err, http.StatusBadRequest, service.MessageNothingToUpdate)
	})

	t.Run("color is trimmed", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), idFilter(roomID)).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (model.Room, error) {
				assert.Equal(t, "Blue", fields[model.FieldColor])

				return blueRoom(), nil
			})

		res, err := svc.Update(context.Background(), roomID, dto.UpdateRoomRequest{Color: ptr("  Blue ")})
		require.NoError(t, err)
		assert.Equal(t, "Blue", res.Color)
	})

	t.Run("color taken", func(t *testing.T) {
		svc, mockRepo := newService(t)

		pqErr := &pq.Error{Code: "23505"}
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Room{}, fmt.Errorf("%w: %w", gRepo.ErrDuplicateKey, pqErr))

		_, err := svc.Update(context.Background(), roomID, dto.UpdateRoomRequest{Color: ptr(" Red ")})
		assertFailure(t, err, http.StatusBadRequest, "Room with color 'Red' already exists")
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		svc, mockRepo := newService(t)

		maintained := blueRoom()
		maintained.Status = model.StatusMaintenance

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), idFilter(roomID)).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (model.Room, error) {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
				assert.Len(t, fields, 2)

				return maintained, nil
			})

		res, err := svc.UpdateStatus(context.Background(), roomID, model.StatusMaintenance)
		require.NoError(t, err)
		assert.Equal(t, model.StatusMaintenance, res.Status)
	})

	t.Run("invalid status never reaches the store", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateStatus(context.Background(), roomID, "InvalidStatus")
		assertFailure(t, err, http.StatusBadRequest, service.MessageInvalidRoomStatus)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, gRepo.ErrNotFound)

		_, err := svc.UpdateStatus(context.Background(), roomID, model.StatusFull)
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("second delete is not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Delete(gomock.Any(), idFilter(roomID)).Return(int64(1), nil),
			mockRepo.EXPECT().Delete(gomock.Any(), idFilter(roomID)).Return(int64(0), nil),
		)

		require.NoError(t, svc.Delete(context.Background(), roomID))

		err := svc.Delete(context.Background(), roomID)
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Delete(context.Background(), "123")
		assertFailure(t, err, http.StatusNotFound, service.MessageRoomNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		err := svc.Delete(context.Background(), roomID)
		require.Error(t, err)
		assert.False(t, failure.IsNotFound(err))
	})
}
