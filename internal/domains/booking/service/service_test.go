package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"minihotel/config"
	"minihotel/infras/otel/mocks"
	bookingMocks "minihotel/internal/domains/booking/mocks"
	"minihotel/internal/domains/booking/model"
	"minihotel/internal/domains/booking/model/dto"
	"minihotel/internal/domains/booking/service"
	customerMocks "minihotel/internal/domains/customer/mocks"
	customerModel "minihotel/internal/domains/customer/model"
	roomMocks "minihotel/internal/domains/room/mocks"
	roomModel "minihotel/internal/domains/room/model"
	eventMocks "minihotel/internal/events/mocks"
	cacheMocks "minihotel/shared/cache/mocks"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	"minihotel/shared/timezone"
)

func activeRoom(id int, price float64) roomModel.Room {
	return roomModel.Room{
		ID:          id,
		RoomNumber:  "101",
		RoomTypeID:  1,
		PricePerDay: price,
		Status:      roomModel.StatusActive,
	}
}

func activeCustomer(id int) customerModel.Customer {
	return customerModel.Customer{
		ID:       id,
		FullName: "Test Customer",
		Email:    "test@example.com",
		Status:   customerModel.StatusActive,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation and event publishing run off the request path.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	checkIn := timezone.Today().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)

	req := dto.CreateBookingRequest{
		CustomerID:   2,
		RoomID:       1,
		CheckInDate:  checkIn.Format(constant.DateOnlyFormat),
		CheckOutDate: checkOut.Format(constant.DateOnlyFormat),
		Notes:        "late arrival, non-smoking",
	}

	tests := []struct {
		name        string
		req         dto.CreateBookingRequest
		setupMock   func()
		wantErr     bool
		expectedErr error
		wantID      int
	}{
		{
			name: "successful creation allocates next identifier",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 100), nil)

				// An existing stay that ends on the requested check-in day
				// only touches the boundary and must not block the booking.
				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{
						{
							ID:           5,
							RoomID:       1,
							CheckInDate:  checkIn.AddDate(0, 0, -2),
							CheckOutDate: checkIn,
							Status:       model.StatusConfirmed,
						},
					}, nil)

				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCustomer(2), nil)

				mockRepo.EXPECT().
					NextID(gomock.Any()).
					Return(6, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 6, booking.ID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, float64(200), booking.TotalPrice)
						assert.Equal(t, "late arrival, non-smoking", booking.Notes)

						return nil
					})
			},
			wantErr: false,
			wantID:  6,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				CustomerID:   2,
				RoomID:       1,
				CheckInDate:  "not-a-date",
				CheckOutDate: req.CheckOutDate,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				CustomerID:   2,
				RoomID:       1,
				CheckInDate:  req.CheckInDate,
				CheckOutDate: req.CheckInDate,
			},
			setupMock:   func() {},
			wantErr:     true,
			expectedErr: model.ErrInvalidDateRange,
		},
		{
			name: "check-in in the past",
			req: dto.CreateBookingRequest{
				CustomerID:   2,
				RoomID:       1,
				CheckInDate:  timezone.Today().AddDate(0, 0, -1).Format(constant.DateOnlyFormat),
				CheckOutDate: req.CheckOutDate,
			},
			setupMock:   func() {},
			wantErr:     true,
			expectedErr: model.ErrCheckInInPast,
		},
		{
			name: "room not found",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:     true,
			expectedErr: model.ErrRoomUnavailable,
		},
		{
			name: "room inactive",
			req:  req,
			setupMock: func() {
				room := activeRoom(1, 100)
				room.Status = roomModel.StatusInactive

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:     true,
			expectedErr: model.ErrRoomUnavailable,
		},
		{
			name: "overlapping booking conflicts",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 100), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{
						{
							ID:           5,
							RoomID:       1,
							CheckInDate:  checkIn.AddDate(0, 0, 1),
							CheckOutDate: checkOut.AddDate(0, 0, 1),
							Status:       model.StatusPending,
						},
					}, nil)
			},
			wantErr:     true,
			expectedErr: model.ErrDateConflict,
		},
		{
			name: "cancelled booking never blocks the room",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 100), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{
						{
							ID:           5,
							RoomID:       1,
							CheckInDate:  checkIn,
							CheckOutDate: checkOut,
							Status:       model.StatusCancelled,
						},
					}, nil)

				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCustomer(2), nil)

				mockRepo.EXPECT().
					NextID(gomock.Any()).
					Return(6, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  6,
		},
		{
			name: "inactive customer",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 100), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{}, nil)

				customer := activeCustomer(2)
				customer.Status = customerModel.StatusInactive

				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
			wantErr:     true,
			expectedErr: model.ErrCustomerInactive,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 100), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{}, nil)

				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCustomer(2), nil)

				mockRepo.EXPECT().
					NextID(gomock.Any()).
					Return(6, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			id, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	checkIn := timezone.Today().AddDate(0, 0, 7)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantResult dto.GetBookingsResponse
	}{
		{
			name: "successful get all on cache miss",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{
							ID:           1,
							CustomerID:   2,
							RoomID:       1,
							CheckInDate:  checkIn,
							CheckOutDate: checkIn.AddDate(0, 0, 2),
							TotalPrice:   200,
							Status:       model.StatusPending,
							BookingDate:  timezone.Now(),
						},
					}, nil)
			},
			wantErr: false,
			wantResult: dto.GetBookingsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	checkIn := timezone.Today().AddDate(0, 0, 7)

	booking := model.Booking{
		ID:           1,
		CustomerID:   2,
		RoomID:       1,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
		TotalPrice:   200,
		Status:       model.StatusPending,
		BookingDate:  timezone.Now(),
	}

	tests := []struct {
		name      string
		id        int
		setupMock func()
		wantErr   bool
		wantID    int
	}{
		{
			name: "cache hit",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  1,
		},
		{
			name: "booking not found",
			id:   999,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	checkIn := timezone.Today().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)

	existing := model.Booking{
		ID:           3,
		CustomerID:   2,
		RoomID:       1,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   200,
		Status:       model.StatusConfirmed,
		BookingDate:  timezone.Now(),
	}

	newCheckIn := checkIn.AddDate(0, 0, 1)
	newCheckOut := newCheckIn.AddDate(0, 0, 3)

	tests := []struct {
		name        string
		req         dto.UpdateBookingRequest
		id          int
		setupMock   func()
		wantErr     bool
		expectedErr error
	}{
		{
			name: "reschedule recomputes price and ignores own record",
			req: dto.UpdateBookingRequest{
				CheckInDate:  newCheckIn.Format(constant.DateOnlyFormat),
				CheckOutDate: newCheckOut.Format(constant.DateOnlyFormat),
				Notes:        "guest asked for a crib",
			},
			id: 3,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 150), nil)

				// The conflict scan sees the booking's own record over the
				// old dates; it must be excluded or every reschedule that
				// overlaps itself would fail.
				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{existing}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, float64(450), fields[model.FieldTotalPrice])
						assert.Equal(t, "guest asked for a crib", fields[model.FieldNotes])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateBookingRequest{},
			id:        3,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				CheckInDate: newCheckIn.Format(constant.DateOnlyFormat),
			},
			id: 999,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "conflict with another booking",
			req: dto.UpdateBookingRequest{
				CheckInDate:  newCheckIn.Format(constant.DateOnlyFormat),
				CheckOutDate: newCheckOut.Format(constant.DateOnlyFormat),
			},
			id: 3,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 150), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{
						existing,
						{
							ID:           9,
							RoomID:       1,
							CheckInDate:  newCheckIn,
							CheckOutDate: newCheckOut,
							Status:       model.StatusPending,
						},
					}, nil)
			},
			wantErr:     true,
			expectedErr: model.ErrDateConflict,
		},
		{
			name: "update error",
			req: dto.UpdateBookingRequest{
				CheckInDate:  newCheckIn.Format(constant.DateOnlyFormat),
				CheckOutDate: newCheckOut.Format(constant.DateOnlyFormat),
			},
			id: 3,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom(1, 150), nil)

				mockRepo.EXPECT().
					GetByRoomID(gomock.Any(), 1).
					Return([]model.Booking{existing}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int
		setupMock func()
		wantFound bool
		wantErr   bool
	}{
		{
			name: "successful cancel",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 1, Status: model.StatusPending}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
			},
			wantFound: true,
			wantErr:   false,
		},
		{
			name: "cancelling a cancelled booking is a no-op",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 1, Status: model.StatusCancelled}, nil)
			},
			wantFound: true,
			wantErr:   false,
		},
		{
			name: "missing booking reports not found without error",
			id:   999,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantFound: false,
			wantErr:   false,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantFound: false,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			found, err := svc.Cancel(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestBookingService_ConfirmAndComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("confirm pending booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusPending}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		found, err := svc.Confirm(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("complete confirmed booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusConfirmed}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		found, err := svc.Complete(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("complete missing booking reports not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		found, err := svc.Complete(ctx, 999)

		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestBookingService_StrictTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.StrictTransitions = true

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("completing a pending booking is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusPending}, nil)

		found, err := svc.Complete(ctx, 1)

		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.True(t, found)
	})

	t.Run("confirming a completed booking is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusCompleted}, nil)

		found, err := svc.Confirm(ctx, 1)

		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.True(t, found)
	})

	t.Run("cancelling a completed booking is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusCompleted}, nil)

		found, err := svc.Cancel(ctx, 1)

		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.True(t, found)
	})

	t.Run("allowed moves still go through", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusPending}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		found, err := svc.Confirm(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("re-applying the current status stays idempotent", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 1, Status: model.StatusCancelled}, nil)

		found, err := svc.Cancel(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
	})
}

func TestBookingService_GetAvailableRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockPublisher := eventMocks.NewMockBookingPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockCustomerRepo, mockPublisher, cfg, mockCache, mockOtel)

	checkIn := timezone.Today().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)

	t.Run("invalid range", func(t *testing.T) {
		_, err := svc.GetAvailableRooms(context.Background(), checkOut, checkIn)

		assert.ErrorIs(t, err, model.ErrInvalidDateRange)
	})

	t.Run("conflicting and cancelled bookings are weighed correctly", func(t *testing.T) {
		rooms := []roomModel.Room{
			activeRoom(1, 100),
			activeRoom(2, 150),
			activeRoom(3, 200),
		}

		bookings := []model.Booking{
			// Room 1 is taken over the requested stay.
			{ID: 1, RoomID: 1, CheckInDate: checkIn, CheckOutDate: checkOut, Status: model.StatusConfirmed},
			// Room 2 has a cancelled overlap, which frees the room.
			{ID: 2, RoomID: 2, CheckInDate: checkIn, CheckOutDate: checkOut, Status: model.StatusCancelled},
			// Room 3 has a stay ending exactly on the requested check-in.
			{ID: 3, RoomID: 3, CheckInDate: checkIn.AddDate(0, 0, -3), CheckOutDate: checkIn, Status: model.StatusPending},
		}

		mockRoomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		res, err := svc.GetAvailableRooms(context.Background(), checkIn, checkOut)

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, 2, res.Rooms[0].ID)
		assert.Equal(t, 3, res.Rooms[1].ID)
	})

	t.Run("rooms error", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAvailableRooms(context.Background(), checkIn, checkOut)

		assert.Error(t, err)
	})

	t.Run("bookings error", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{activeRoom(1, 100)}, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAvailableRooms(context.Background(), checkIn, checkOut)

		assert.Error(t, err)
	})
}
