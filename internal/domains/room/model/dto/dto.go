package dto

import (
	"strings"

	"wehouse/internal/domains/room/model"
	gDto "wehouse/shared/dto"
	gModel "wehouse/shared/model"
	"wehouse/shared/timezone"
	"wehouse/shared/validator"

	"github.com/google/uuid"
)

const (
	fieldColor         = "color"
	fieldCapacity      = "capacity"
	fieldType          = "type"
	fieldTwoPersonBeds = "twoPersonBeds"
	fieldOnePersonBeds = "onePersonBeds"
	fieldRentPrice     = "rentPrice"
	fieldStatus        = "status"
)

var (
	typeTag   = "oneof=" + strings.Join(model.Types, " ")
	statusTag = "oneof=" + strings.Join(model.Statuses, " ")
)

// Checks shared by create and update; only presence differs between them.
var (
	colorChecks         = []validator.Check{{Predicate: validator.NotBlank, Message: "Color is required"}}
	capacityChecks      = []validator.Check{{Tag: "min=1", Message: "Capacity must be greater than 0"}}
	typeChecks          = []validator.Check{{Tag: typeTag, Message: "Invalid room type"}}
	twoPersonBedsChecks = []validator.Check{{Tag: "min=0", Message: "Two person beds count must be non-negative"}}
	onePersonBedsChecks = []validator.Check{{Tag: "min=0", Message: "One person beds count must be non-negative"}}
	rentPriceChecks     = []validator.Check{{Tag: "min=0", Message: "Rent price must be non-negative"}}
	statusChecks        = []validator.Check{{Tag: statusTag, Message: "Invalid room status"}}
)

type CreateRoomRequest struct {
	Color         *string  `json:"color"`
	Capacity      *int     `json:"capacity"`
	Type          *string  `json:"type"`
	TwoPersonBeds *int     `json:"twoPersonBeds"`
	OnePersonBeds *int     `json:"onePersonBeds"`
	RentPrice     *float64 `json:"rentPrice"`
	Status        *string  `json:"status"`
}

var CreateRoomRules = []validator.Rule[CreateRoomRequest]{
	{
		Field:           fieldColor,
		Value:           validator.Optional(func(r *CreateRoomRequest) *string { return r.Color }),
		Required:        true,
		RequiredMessage: "Color is required",
		Checks:          colorChecks,
	},
	{
		Field:    fieldCapacity,
		Value:    validator.Optional(func(r *CreateRoomRequest) *int { return r.Capacity }),
		Required: true,
		Checks:   capacityChecks,
	},
	{
		Field:    fieldType,
		Value:    validator.Optional(func(r *CreateRoomRequest) *string { return r.Type }),
		Required: true,
		Checks:   typeChecks,
	},
	{
		Field:    fieldTwoPersonBeds,
		Value:    validator.Optional(func(r *CreateRoomRequest) *int { return r.TwoPersonBeds }),
		Required: true,
		Checks:   twoPersonBedsChecks,
	},
	{
		Field:    fieldOnePersonBeds,
		Value:    validator.Optional(func(r *CreateRoomRequest) *int { return r.OnePersonBeds }),
		Required: true,
		Checks:   onePersonBedsChecks,
	},
	{
		Field:    fieldRentPrice,
		Value:    validator.Optional(func(r *CreateRoomRequest) *float64 { return r.RentPrice }),
		Required: true,
		Checks:   rentPriceChecks,
	},
	{
		Field:    fieldStatus,
		Value:    validator.Optional(func(r *CreateRoomRequest) *string { return r.Status }),
		Required: true,
		Checks:   statusChecks,
	},
}

// ToModel builds a new room with a fresh id and a trimmed color. Absent fields
// take their zero value, apart from status which starts as ReadyForReservation.
func (c *CreateRoomRequest) ToModel() model.Room {
	now := timezone.Now()

	room := model.Room{
		ID:       uuid.NewString(),
		Status:   model.StatusReadyForReservation,
		Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}

	if c.Color != nil {
		room.Color = strings.TrimSpace(*c.Color)
	}

	if c.Capacity != nil {
		room.Capacity = *c.Capacity
	}

	if c.Type != nil {
		room.Type = *c.Type
	}

	if c.TwoPersonBeds != nil {
		room.TwoPersonBeds = *c.TwoPersonBeds
	}

	if c.OnePersonBeds != nil {
		room.OnePersonBeds = *c.OnePersonBeds
	}

	if c.RentPrice != nil {
		room.RentPrice = *c.RentPrice
	}

	if c.Status != nil {
		room.Status = *c.Status
	}

	return room
}

// UpdateRoomRequest is a partial update; nil fields are left untouched.
type UpdateRoomRequest struct {
	Color         *string  `db:"color"           json:"color"`
	Capacity      *int     `db:"capacity"        json:"capacity"`
	Type          *string  `db:"type"            json:"type"`
	TwoPersonBeds *int     `db:"two_person_beds" json:"twoPersonBeds"`
	OnePersonBeds *int     `db:"one_person_beds" json:"onePersonBeds"`
	RentPrice     *float64 `db:"rent_price"      json:"rentPrice"`
	Status        *string  `db:"status"          json:"status"`
}

var UpdateRoomRules = []validator.Rule[UpdateRoomRequest]{
	{
		Field:  fieldColor,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *string { return r.Color }),
		Checks: colorChecks,
	},
	{
		Field:  fieldCapacity,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *int { return r.Capacity }),
		Checks: capacityChecks,
	},
	{
		Field:  fieldType,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *string { return r.Type }),
		Checks: typeChecks,
	},
	{
		Field:  fieldTwoPersonBeds,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *int { return r.TwoPersonBeds }),
		Checks: twoPersonBedsChecks,
	},
	{
		Field:  fieldOnePersonBeds,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *int { return r.OnePersonBeds }),
		Checks: onePersonBedsChecks,
	},
	{
		Field:  fieldRentPrice,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *float64 { return r.RentPrice }),
		Checks: rentPriceChecks,
	},
	{
		Field:  fieldStatus,
		Value:  validator.Optional(func(r *UpdateRoomRequest) *string { return r.Status }),
		Checks: statusChecks,
	},
}

// IsEmpty reports whether the request carries no field at all.
func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Color == nil && u.Capacity == nil && u.Type == nil && u.TwoPersonBeds == nil &&
		u.OnePersonBeds == nil && u.RentPrice == nil && u.Status == nil
}

// Normalize trims the color so it is stored the way create stores it.
func (u *UpdateRoomRequest) Normalize() {
	if u.Color != nil {
		color := strings.TrimSpace(*u.Color)
		u.Color = &color
	}
}

type UpdateRoomStatusRequest struct {
	Status *string `json:"status"`
}

var UpdateRoomStatusRules = []validator.Rule[UpdateRoomStatusRequest]{
	{
		Field:           fieldStatus,
		Value:           validator.Optional(func(r *UpdateRoomStatusRequest) *string { return r.Status }),
		Required:        true,
		RequiredMessage: "Status is required",
		Checks:          statusChecks,
	},
}

type RoomResponse struct {
	ID            string  `json:"id"`
	Color         string  `json:"color"`
	Capacity      int     `json:"capacity"`
	Type          string  `json:"type"`
	TwoPersonBeds int     `json:"twoPersonBeds"`
	OnePersonBeds int     `json:"onePersonBeds"`
	RentPrice     float64 `json:"rentPrice"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Color = model.Color
	r.Capacity = model.Capacity
	r.Type = model.Type
	r.TwoPersonBeds = model.TwoPersonBeds
	r.OnePersonBeds = model.OnePersonBeds
	r.RentPrice = model.RentPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
