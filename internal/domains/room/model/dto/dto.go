package dto

import (
	"minihotel/internal/domains/room/model"
	"minihotel/shared"
	gDto "minihotel/shared/dto"
	gModel "minihotel/shared/model"
	"minihotel/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number"   validate:"required,max=50"`
	Description string  `json:"description"   validate:"omitempty,max=220"`
	MaxCapacity int     `json:"max_capacity"  validate:"required,min=1"`
	RoomTypeID  int     `json:"room_type_id"  validate:"required,min=1"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Status      int     `json:"status"        validate:"omitempty,oneof=1 2"`
}

func (c *CreateRoomRequest) ToModel(id int, user string) model.Room {
	status := c.Status
	if status == 0 {
		status = model.StatusActive
	}

	return model.Room{
		ID:          id,
		RoomNumber:  c.RoomNumber,
		Description: c.Description,
		MaxCapacity: c.MaxCapacity,
		RoomTypeID:  c.RoomTypeID,
		PricePerDay: c.PricePerDay,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string  `db:"room_number"   json:"room_number"   validate:"omitempty,max=50"`
	Description string  `db:"description"   json:"description"   validate:"omitempty,max=220"`
	MaxCapacity int     `db:"max_capacity"  json:"max_capacity"  validate:"omitempty,min=1"`
	RoomTypeID  int     `db:"room_type_id"  json:"room_type_id"  validate:"omitempty,min=1"`
	PricePerDay float64 `db:"price_per_day" json:"price_per_day" validate:"omitempty,gt=0"`
	Status      int     `db:"status"        json:"status"        validate:"omitempty,oneof=1 2"`
}

type CreateRoomResponse struct {
	ID int `json:"room_id"`
}

type RoomResponse struct {
	ID          int     `json:"room_id"`
	RoomNumber  string  `json:"room_number"`
	Description string  `json:"description"`
	MaxCapacity int     `json:"max_capacity"`
	RoomTypeID  int     `json:"room_type_id"`
	PricePerDay float64 `json:"price_per_day"`
	Status      int     `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Description = model.Description
	r.MaxCapacity = model.MaxCapacity
	r.RoomTypeID = model.RoomTypeID
	r.PricePerDay = model.PricePerDay
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
