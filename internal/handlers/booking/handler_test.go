package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "minihotel/infras/otel/mocks"
	"minihotel/internal/domains/booking/model/dto"
	serviceMocks "minihotel/internal/domains/booking/service/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetBookings_StatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := serviceMocks.NewMockBooking(ctrl)
	handler := New(mockService, otelMocks.NewOtel())

	tests := []struct {
		name       string
		query      string
		setupMock  func()
		wantStatus int
	}{
		{
			name:  "valid status filter reaches the service",
			query: "?status=2",
			setupMock: func() {
				mockService.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.GetBookingsResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "out of range status is rejected",
			query:      "?status=9",
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero status is rejected",
			query:      "?status=0",
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric status is rejected",
			query:      "?status=pending",
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "no status filter lists everything",
			query: "",
			setupMock: func() {
				mockService.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.GetBookingsResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			request := httptest.NewRequest(http.MethodGet, "/bookings"+tt.query, nil)
			recorder := httptest.NewRecorder()

			handler.GetBookings(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
