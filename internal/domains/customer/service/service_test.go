package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"minihotel/config"
	"minihotel/infras/otel/mocks"
	bookingMocks "minihotel/internal/domains/booking/mocks"
	customerMocks "minihotel/internal/domains/customer/mocks"
	"minihotel/internal/domains/customer/model"
	"minihotel/internal/domains/customer/model/dto"
	"minihotel/internal/domains/customer/service"
	cacheMocks "minihotel/shared/cache/mocks"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
)

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	req := dto.CreateCustomerRequest{
		FullName:  "Test Customer",
		Telephone: "081234567890",
		Email:     "Test@Example.com",
		Birthday:  "1990-05-20",
		Password:  "super-secret",
	}

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantErr   bool
		wantID    int
	}{
		{
			name: "successful registration stores lowercased email and a hash",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					NextID(gomock.Any()).
					Return(3, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer model.Customer) error {
						assert.Equal(t, 3, customer.ID)
						assert.Equal(t, "test@example.com", customer.Email)
						assert.Equal(t, model.StatusActive, customer.Status)
						assert.True(t, strings.HasPrefix(customer.Password, "$2"))

						return nil
					})
			},
			wantErr: false,
			wantID:  3,
		},
		{
			name: "duplicate email",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(model.Customer{ID: 1, Email: "test@example.com"}, nil)
			},
			wantErr: true,
		},
		{
			name: "email check error",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					NextID(gomock.Any()).
					Return(3, nil)

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
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestCustomerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	customer := model.Customer{
		ID:       2,
		FullName: "Test Customer",
		Email:    "test@example.com",
		Status:   model.StatusActive,
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
			id:   2,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   2,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  2,
		},
		{
			name: "customer not found",
			id:   999,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

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

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		id        int
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update parses birthday",
			req:  dto.UpdateCustomerRequest{FullName: "Renamed Customer", Birthday: "1991-01-15"},
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldBirthday)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateCustomerRequest{},
			id:        2,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid birthday format",
			req:  dto.UpdateCustomerRequest{Birthday: "15-01-1991"},
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "customer not found",
			req:  dto.UpdateCustomerRequest{FullName: "Renamed Customer"},
			id:   999,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
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
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int
		setupMock func()
		wantErr   bool
	}{
		{
			name: "customer without bookings is deleted",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "customer with booking history is deactivated instead",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusInactive, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "customer not found",
			id:   999,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
