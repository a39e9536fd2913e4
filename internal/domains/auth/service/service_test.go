package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"minihotel/config"
	"minihotel/infras/jwt"
	jwtMocks "minihotel/infras/jwt/mocks"
	"minihotel/infras/otel/mocks"
	"minihotel/internal/domains/auth/model/dto"
	"minihotel/internal/domains/auth/service"
	customerMocks "minihotel/internal/domains/customer/mocks"
	customerModel "minihotel/internal/domains/customer/model"
	"minihotel/shared/constant"
	"minihotel/shared/password"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "admin-secret"

	svc := service.New(mockCustomerRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	customer := customerModel.Customer{
		ID:       2,
		FullName: "Test Customer",
		Email:    "customer@example.com",
		Password: hashed,
		Status:   customerModel.StatusActive,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantRole  string
	}{
		{
			name: "admin login from configuration",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "admin-secret",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(constant.RoleAdmin, "admin@example.com", constant.RoleAdmin).
					Return(tokenPair, nil)
			},
			wantErr:  false,
			wantRole: constant.RoleAdmin,
		},
		{
			name: "customer login",
			req: dto.LoginRequest{
				Email:    "customer@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "customer@example.com").
					Return(customer, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("2", "customer@example.com", constant.RoleCustomer).
					Return(tokenPair, nil)
			},
			wantErr:  false,
			wantRole: constant.RoleCustomer,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "nobody@example.com").
					Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "customer@example.com",
				Password: "wrong-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "customer@example.com").
					Return(customer, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong admin password falls through to customer lookup",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "not-the-admin-secret",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated customer",
			req: dto.LoginRequest{
				Email:    "customer@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				inactive := customer
				inactive.Status = customerModel.StatusInactive

				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "customer@example.com").
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "customer@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "customer@example.com").
					Return(customerModel.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "customer@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					GetByEmail(gomock.Any(), "customer@example.com").
					Return(customer, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("2", "customer@example.com", constant.RoleCustomer).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, res.Role)
				assert.Equal(t, tokenPair.AccessToken, res.AccessToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockCustomerRepo, cfg, mockOtel, mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("valid-refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("expired-token").
			Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired-token"})

		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockCustomerRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("current-password")
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	customer := customerModel.Customer{
		ID:       2,
		Email:    "customer@example.com",
		Password: hashed,
		Status:   customerModel.StatusActive,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "current-password",
				NewPassword:     "brand-new-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)

				mockCustomerRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "not-the-current-password",
				NewPassword:     "brand-new-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
			wantErr: true,
		},
		{
			name: "customer not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "current-password",
				NewPassword:     "brand-new-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "current-password",
				NewPassword:     "brand-new-password",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)

				mockCustomerRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, 2)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
