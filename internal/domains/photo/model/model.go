package model

import (
	"minihotel/shared/model"
)

const (
	TableName  = "room_photos"
	EntityName = "photo"

	FieldID      = "photo_id"
	FieldRoomID  = "room_id"
	FieldURL     = "url"
	FieldCaption = "caption"
)

type Photo struct {
	ID      string `db:"photo_id"`
	RoomID  int    `db:"room_id"`
	URL     string `db:"url"`
	Caption string `db:"caption"`
	model.Metadata
}
