package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"minihotel/config"
	"minihotel/infras/otel"
	"minihotel/internal/domains/booking/model"
	"minihotel/internal/domains/booking/model/dto"
	"minihotel/internal/domains/booking/repository"
	customerRepo "minihotel/internal/domains/customer/repository"
	roomRepo "minihotel/internal/domains/room/repository"
	"minihotel/internal/events"
	"minihotel/shared"
	"minihotel/shared/cache"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	"minihotel/shared/failure"
	"minihotel/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	GetByCustomer(ctx context.Context, req gDto.QueryParams, customerID int) (dto.GetBookingsResponse, error)
	GetByDateRange(ctx context.Context, req gDto.QueryParams, start, end time.Time) (dto.GetBookingsResponse, error)
	GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) (dto.GetAvailableRoomsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int) error
	Cancel(ctx context.Context, id int) (bool, error)
	Confirm(ctx context.Context, id int) (bool, error)
	Complete(ctx context.Context, id int) (bool, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	publisher    events.BookingPublisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel

	// mu serializes every booking mutation. Allocating the next identifier
	// and persisting the record must be atomic with respect to other
	// writers in this process, and the validate-then-write sequence must
	// not interleave or two overlapping stays could both pass validation.
	mu sync.Mutex
}

func New(repo repository.Booking, roomRepo roomRepo.Room, customerRepo customerRepo.Customer, publisher events.BookingPublisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	room, err := s.validate(ctx, req.CustomerID, req.RoomID, checkIn, checkOut, 0, true)
	if err != nil {
		return 0, err
	}

	id, err = s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate booking id")

		return 0, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(id, checkIn, checkOut, float64(nights(checkIn, checkOut))*room.PricePerDay, user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, events.TypeBookingCreated, booking)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, req gDto.QueryParams, customerID int) (dto.GetBookingsResponse, error) {
	return s.GetAll(ctx, req, shared.FilterByID(customerID, model.FieldCustomerID, model.TableName))
}

func (s *serviceImpl) GetByDateRange(ctx context.Context, req gDto.QueryParams, start, end time.Time) (dto.GetBookingsResponse, error) {
	return s.GetAll(ctx, req, repository.DateRangeFilter(start, end))
}

// Update reschedules a stay. The booking identifier, owning customer, and
// booking date never change; the stay is re-validated with the booking's
// own record excluded from the conflict scan, and the total price is
// recomputed from the target room's rate.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	roomID := booking.RoomID
	if req.RoomID != 0 {
		roomID = req.RoomID
	}

	checkIn := booking.CheckInDate
	if req.CheckInDate != "" {
		checkIn, err = timezone.Parse(constant.DateOnlyFormat, req.CheckInDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}
	}

	checkOut := booking.CheckOutDate
	if req.CheckOutDate != "" {
		checkOut, err = timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}
	}

	room, err := s.validate(ctx, booking.CustomerID, roomID, checkIn, checkOut, booking.ID, false)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldCheckInDate:   checkIn,
		model.FieldCheckOutDate:  checkOut,
		model.FieldTotalPrice:    float64(nights(checkIn, checkOut)) * room.PricePerDay,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Notes != "" {
		updatedFields[model.FieldNotes] = req.Notes
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	booking.RoomID = roomID
	booking.CheckInDate = checkIn
	booking.CheckOutDate = checkOut

	s.invalidate(ctx, id)
	s.publish(ctx, events.TypeBookingUpdated, booking)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int) (bool, error) {
	return s.transition(ctx, id, model.StatusCancelled, events.TypeBookingCancelled)
}

func (s *serviceImpl) Confirm(ctx context.Context, id int) (bool, error) {
	return s.transition(ctx, id, model.StatusConfirmed, events.TypeBookingConfirmed)
}

func (s *serviceImpl) Complete(ctx context.Context, id int) (bool, error) {
	return s.transition(ctx, id, model.StatusCompleted, events.TypeBookingCompleted)
}

// transition moves a booking to the given status. A missing identifier is
// a benign no-op reported as found=false. With the strict guard disabled
// (the default) any move is accepted; enabled, the transition table rules.
func (s *serviceImpl) transition(ctx context.Context, id int, next model.Status, eventType string) (found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return false, nil
	}

	if s.cfg.Booking.StrictTransitions && !booking.Status.CanTransitionTo(next) {
		return true, model.ErrInvalidTransition
	}

	if booking.Status == next {
		return true, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next

	s.invalidate(ctx, id)
	s.publish(ctx, eventType, booking)

	return true, nil
}

// nights measures a stay in whole nights; dates are already truncated to
// midnight in the application timezone.
func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func (s *serviceImpl) invalidate(ctx context.Context, id int) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// publish emits the lifecycle event without blocking the request path.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:       eventType,
			BookingID:  booking.ID,
			CustomerID: booking.CustomerID,
			RoomID:     booking.RoomID,
			Status:     int(booking.Status),
			OccurredAt: timezone.Now(),
		}

		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}
