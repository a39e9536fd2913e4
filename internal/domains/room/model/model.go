package model

import (
	"minihotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "room_id"
	FieldRoomNumber  = "room_number"
	FieldDescription = "description"
	FieldMaxCapacity = "max_capacity"
	FieldRoomTypeID  = "room_type_id"
	FieldPricePerDay = "price_per_day"
	FieldStatus      = "status"
)

// Room status values are stored as small integers for compatibility with
// pre-existing data. Only Active rooms can be booked.
const (
	StatusActive   = 1
	StatusInactive = 2
)

type Room struct {
	ID          int     `db:"room_id"`
	RoomNumber  string  `db:"room_number"`
	Description string  `db:"description"`
	MaxCapacity int     `db:"max_capacity"`
	RoomTypeID  int     `db:"room_type_id"`
	PricePerDay float64 `db:"price_per_day"`
	Status      int     `db:"status"`
	model.Metadata
}
