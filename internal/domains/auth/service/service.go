package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"fmt"
	"minihotel/config"
	"minihotel/infras/jwt"
	"minihotel/infras/otel"
	"minihotel/internal/domains/auth/model/dto"
	customerModel "minihotel/internal/domains/customer/model"
	customerRepo "minihotel/internal/domains/customer/repository"
	"minihotel/shared"
	"minihotel/shared/constant"
	"minihotel/shared/failure"
	"minihotel/shared/password"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, customerID int) error
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

// Login authenticates the built-in back-office account from configuration,
// or a customer by email and password.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.isAdmin(req.Email, req.Password) {
		tokenPair, err := s.jwtService.GenerateTokenPair(constant.RoleAdmin, s.cfg.Admin.Email, constant.RoleAdmin)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate tokens")

			return res, fmt.Errorf("failed to generate tokens: %w", err)
		}

		res.FromTokenPair(tokenPair, constant.RoleAdmin)

		return res, nil
	}

	customer, err := s.customerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, customer.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if customer.Status != customerModel.StatusActive {
		return res, failure.BadRequestFromString("customer account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(strconv.Itoa(customer.ID), customer.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, constant.RoleCustomer)

	return res, nil
}

func (s *serviceImpl) isAdmin(email, pass string) bool {
	if s.cfg.Admin.Email == "" {
		return false
	}

	emailMatch := strings.EqualFold(email, s.cfg.Admin.Email)
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.Admin.Password)) == 1

	return emailMatch && passMatch
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	_ = ctx

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, customerID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName)

	customer, err := s.customerRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, customer.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, customer.Email)

	if err = s.customerRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
