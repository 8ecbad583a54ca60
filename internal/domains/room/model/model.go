package model

import (
	"slices"

	"wehouse/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldColor         = "color"
	FieldCapacity      = "capacity"
	FieldType          = "type"
	FieldTwoPersonBeds = "two_person_beds"
	FieldOnePersonBeds = "one_person_beds"
	FieldRentPrice     = "rent_price"
	FieldStatus        = "status"
)

const (
	TypePrivate = "Private"
	TypeShared  = "Shared"
)

const (
	StatusReadyForReservation = "ReadyForReservation"
	StatusReserved            = "Reserved"
	StatusMaintenance         = "Maintenance"
	StatusFull                = "Full"
)

var (
	Types    = []string{TypePrivate, TypeShared}
	Statuses = []string{StatusReadyForReservation, StatusReserved, StatusMaintenance, StatusFull}
)

type Room struct {
	ID            string  `db:"id"`
	Color         string  `db:"color"`
	Capacity      int     `db:"capacity"`
	Type          string  `db:"type"`
	TwoPersonBeds int     `db:"two_person_beds"`
	OnePersonBeds int     `db:"one_person_beds"`
	RentPrice     float64 `db:"rent_price"`
	Status        string  `db:"status"`
	model.Metadata
}

// IsValidStatus reports whether status is one of the room statuses.
func IsValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}
