package dto

import (
	"minihotel/internal/domains/booking/model"
	roomModel "minihotel/internal/domains/room/model"
	roomDto "minihotel/internal/domains/room/model/dto"
	"minihotel/shared"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	gModel "minihotel/shared/model"
	"minihotel/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	CustomerID   int    `json:"customer_id"    validate:"required,min=1"`
	RoomID       int    `json:"room_id"        validate:"required,min=1"`
	CheckInDate  string `json:"check_in_date"  validate:"required,dateonly"`
	CheckOutDate string `json:"check_out_date" validate:"required,dateonly"`
	Notes        string `json:"notes"          validate:"omitempty,max=500"`
}

// ParseDates resolves the requested stay into application-timezone dates.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)

	return checkIn, checkOut, err
}

// ToModel builds the booking record. The identifier and total price are
// assigned by the service; the booking date is stamped here and never
// changes afterwards.
func (c *CreateBookingRequest) ToModel(id int, checkIn, checkOut time.Time, totalPrice float64, user string) model.Booking {
	return model.Booking{
		ID:           id,
		CustomerID:   c.CustomerID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   totalPrice,
		Status:       model.StatusPending,
		BookingDate:  timezone.Now(),
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest reschedules a stay or rewrites its notes. The
// booking identifier, owning customer, and booking date are immutable;
// status changes go through the cancel/confirm/complete operations instead.
type UpdateBookingRequest struct {
	RoomID       int    `json:"room_id"        validate:"omitempty,min=1"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,dateonly"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,dateonly"`
	Notes        string `json:"notes"          validate:"omitempty,max=500"`
}

type CreateBookingResponse struct {
	ID int `json:"booking_id"`
}

type BookingResponse struct {
	ID           int     `json:"booking_id"`
	CustomerID   int     `json:"customer_id"`
	RoomID       int     `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
	Status       int     `json:"status"`
	BookingDate  string  `json:"booking_date"`
	Notes        string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = int(model.Status)
	r.BookingDate = model.BookingDate.Format(constant.DateFormat)
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetAvailableRoomsResponse struct {
	CheckInDate  string                 `json:"check_in_date"`
	CheckOutDate string                 `json:"check_out_date"`
	Rooms        []roomDto.RoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(checkIn, checkOut time.Time, models []roomModel.Room) {
	r.CheckInDate = checkIn.Format(constant.DateOnlyFormat)
	r.CheckOutDate = checkOut.Format(constant.DateOnlyFormat)

	r.Rooms = make([]roomDto.RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
