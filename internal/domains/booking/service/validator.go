package service

import (
	"context"
	"fmt"
	"minihotel/internal/domains/booking/model"
	customerModel "minihotel/internal/domains/customer/model"
	roomModel "minihotel/internal/domains/room/model"
	"minihotel/shared"
	"minihotel/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// validate runs the pre-persistence checks in a fixed order and stops at
// the first failure, so a request with several problems always reports the
// same one: date order, past check-in, room availability, date conflict,
// then customer standing. The customer check only applies on create; a
// reschedule keeps its original owner. The checked room is returned so the
// caller can price the stay without refetching.
func (s *serviceImpl) validate(ctx context.Context, customerID, roomID int, checkIn, checkOut time.Time, excludeBookingID int, checkCustomer bool) (roomModel.Room, error) {
	if !checkOut.After(checkIn) {
		return roomModel.Room{}, model.ErrInvalidDateRange
	}

	if checkIn.Before(timezone.Today()) {
		return roomModel.Room{}, model.ErrCheckInInPast
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return roomModel.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 || room.Status != roomModel.StatusActive {
		return roomModel.Room{}, model.ErrRoomUnavailable
	}

	conflict, err := s.hasConflict(ctx, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return roomModel.Room{}, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return roomModel.Room{}, model.ErrDateConflict
	}

	if checkCustomer {
		customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get customer")

			return roomModel.Room{}, fmt.Errorf("failed to get customer: %w", err)
		}

		if customer.ID == 0 || customer.Status != customerModel.StatusActive {
			return roomModel.Room{}, model.ErrCustomerInactive
		}
	}

	return room, nil
}
