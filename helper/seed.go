package helper

import (
	"context"
	"fmt"

	"wehouse/internal/domains/room/model"
	"wehouse/internal/domains/room/model/dto"
	"wehouse/internal/domains/room/service"
	"wehouse/shared/failure"

	"github.com/rs/zerolog/log"
)

type seedRoom struct {
	color         string
	capacity      int
	roomType      string
	twoPersonBeds int
	onePersonBeds int
	rentPrice     float64
}

var defaultRooms = []seedRoom{
	{color: "yellow", capacity: 3, roomType: model.TypePrivate, twoPersonBeds: 1, onePersonBeds: 1, rentPrice: 2100},
	{color: "blue", capacity: 2, roomType: model.TypePrivate, twoPersonBeds: 0, onePersonBeds: 2, rentPrice: 1400},
	{color: "purple", capacity: 2, roomType: model.TypePrivate, twoPersonBeds: 0, onePersonBeds: 2, rentPrice: 1200},
	{color: "green", capacity: 2, roomType: model.TypePrivate, twoPersonBeds: 1, onePersonBeds: 0, rentPrice: 1800},
	{color: "red", capacity: 2, roomType: model.TypePrivate, twoPersonBeds: 1, onePersonBeds: 0, rentPrice: 1600},
	{color: "orange", capacity: 4, roomType: model.TypeShared, twoPersonBeds: 0, onePersonBeds: 4, rentPrice: 400},
}

func (s seedRoom) request() dto.CreateRoomRequest {
	status := model.StatusReadyForReservation

	return dto.CreateRoomRequest{
		Color:         &s.color,
		Capacity:      &s.capacity,
		Type:          &s.roomType,
		TwoPersonBeds: &s.twoPersonBeds,
		OnePersonBeds: &s.onePersonBeds,
		RentPrice:     &s.rentPrice,
		Status:        &status,
	}
}

// SeedRooms creates the default rooms, skipping any color that already exists.
// It returns how many rooms were created.
func SeedRooms(ctx context.Context, rooms service.Room) (int, error) {
	created := 0

	for _, room := range defaultRooms {
		_, err := rooms.GetByColor(ctx, room.color)
		if err == nil {
			log.Info().Str("color", room.color).Msg("Room already exists, skipping")

			continue
		}

		if !failure.IsNotFound(err) {
			return created, fmt.Errorf("looking up room %s: %w", room.color, err)
		}

		if _, err := rooms.Create(ctx, room.request()); err != nil {
			return created, fmt.Errorf("creating room %s: %w", room.color, err)
		}

		log.Info().Str("color", room.color).Msg("Room seeded")

		created++
	}

	return created, nil
}
