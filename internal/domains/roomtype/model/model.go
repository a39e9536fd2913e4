package model

import (
	"minihotel/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "room_type_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldNote        = "note"
)

type RoomType struct {
	ID          int    `db:"room_type_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Note        string `db:"note"`
	model.Metadata
}
