package model

import (
	"minihotel/shared/failure"
	"minihotel/shared/model"
	"slices"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldCustomerID   = "customer_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
	FieldBookingDate  = "booking_date"
	FieldNotes        = "notes"
)

// Status is stored as a small integer for compatibility with pre-existing
// data. A Cancelled booking never blocks other reservations.
type Status int

const (
	StatusPending Status = iota + 1
	StatusConfirmed
	StatusCancelled
	StatusCompleted
)

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCompleted
}

// transitions lists the status moves allowed by the strict lifecycle
// guard. Cancelled and Completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the strict guard permits moving from s
// to next. Re-applying the current status is a harmless no-op and is
// always permitted, which keeps cancellation idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}

	return slices.Contains(transitions[s], next)
}

// Booking validation failures, ordered by the check that raises them.
var (
	ErrInvalidDateRange  = failure.UnprocessableEntity("check-out date must be after check-in date")
	ErrCheckInInPast     = failure.UnprocessableEntity("check-in date cannot be in the past")
	ErrRoomUnavailable   = failure.UnprocessableEntity("room is not available for booking")
	ErrDateConflict      = failure.Conflict("room is already booked for the requested dates")
	ErrCustomerInactive  = failure.UnprocessableEntity("customer is not active")
	ErrInvalidTransition = failure.UnprocessableEntity("booking status transition is not allowed")
)

type Booking struct {
	ID           int       `db:"booking_id"`
	CustomerID   int       `db:"customer_id"`
	RoomID       int       `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalPrice   float64   `db:"total_price"`
	Status       Status    `db:"status"`
	BookingDate  time.Time `db:"booking_date"`
	Notes        string    `db:"notes"`
	model.Metadata
}

// Overlaps reports whether the booking's stay intersects the half-open
// interval [checkIn, checkOut). Stays that only touch at a boundary do not
// overlap, so one guest's check-out day can be another's check-in day.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

// Nights returns the length of the stay in nights.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
