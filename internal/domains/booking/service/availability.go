package service

import (
	"context"
	"fmt"
	"minihotel/internal/domains/booking/model"
	"minihotel/internal/domains/booking/model/dto"
	roomModel "minihotel/internal/domains/room/model"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	"time"

	"github.com/rs/zerolog/log"
)

// hasConflict reports whether any live booking for the room overlaps the
// half-open interval [checkIn, checkOut). Cancelled bookings never block a
// room, and excludeBookingID lets an update ignore its own record. The
// overlap test runs here rather than in the store so the store stays a
// thin filter.
func (s *serviceImpl) hasConflict(ctx context.Context, roomID int, checkIn, checkOut time.Time, excludeBookingID int) (bool, error) {
	bookings, err := s.repo.GetByRoomID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("failed to get room bookings: %w", err)
	}

	for i := range bookings {
		booking := &bookings[i]

		if booking.ID == excludeBookingID {
			continue
		}

		if booking.Status == model.StatusCancelled {
			continue
		}

		if booking.Overlaps(checkIn, checkOut) {
			return true, nil
		}
	}

	return false, nil
}

// GetAvailableRooms lists every active room with no conflicting booking
// over [checkIn, checkOut). The scan is O(rooms x bookings), which is fine
// at the fleet sizes a single property runs.
func (s *serviceImpl) GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkOut.After(checkIn) {
		return res, model.ErrInvalidDateRange
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    roomModel.StatusActive,
				Table:    roomModel.TableName,
			},
		},
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rooms")

		return res, fmt.Errorf("failed to get active rooms: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	available := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		conflict := false

		for i := range bookings {
			booking := &bookings[i]

			if booking.RoomID != room.ID || booking.Status == model.StatusCancelled {
				continue
			}

			if booking.Overlaps(checkIn, checkOut) {
				conflict = true

				break
			}
		}

		if !conflict {
			available = append(available, room)
		}
	}

	res.FromModels(checkIn, checkOut, available)

	return res, nil
}
