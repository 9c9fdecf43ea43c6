package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/validators"
	"github.com/MKhiriev/svp-client/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	testing   bool

	logger *logger.Logger
}

// NewClientAuthService returns the account service. In testing mode the
// email and password rules are not applied.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, testing bool, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validator,
		testing:   testing,
		logger:    log.WithComponent("auth"),
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Warn().Err(err).Str("username", creds.Username).Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return models.Session{}, mapAdapterError(err)
	}

	a.logger.Info().Str("username", creds.Username).Str("user_id", resp.UserID).Msg("logged in")
	return models.Session{Username: creds.Username, UserID: resp.UserID, Token: resp.Token}, nil
}

func (a *clientAuthService) CheckEmail(ctx context.Context, email string) error {
	if a.testing {
		return nil
	}
	if err := a.validator.Validate(ctx, models.SignupRequest{Email: email}, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

func (a *clientAuthService) CheckPassword(ctx context.Context, password string) error {
	if a.testing {
		return nil
	}
	if err := a.validator.Validate(ctx, models.SignupRequest{Password: password}, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}
	return nil
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if !a.testing {
		if err := a.CheckEmail(ctx, req.Email); err != nil {
			return err
		}
		if err := a.CheckPassword(ctx, req.Password); err != nil {
			return err
		}
	}

	if err := a.adapter.Signup(ctx, req); err != nil {
		a.logger.Warn().Err(err).Str("username", req.Username).Msg("signup failed")
		return mapAdapterError(err)
	}

	a.logger.Info().Str("username", req.Username).Msg("account created")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context, session models.Session) error {
	if err := a.adapter.Logout(ctx, session.UserID); err != nil {
		a.logger.Warn().Err(err).Str("user_id", session.UserID).Msg("logout not confirmed by server")
		return mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", session.UserID).Msg("logged out")
	return nil
}

func (a *clientAuthService) Profile(ctx context.Context, session models.Session) (models.User, error) {
	user, err := a.adapter.GetUser(ctx, session.UserID)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) DeleteAccount(ctx context.Context, session models.Session) error {
	if err := a.adapter.DeleteUser(ctx, session.UserID); err != nil {
		a.logger.Error().Err(err).Str("user_id", session.UserID).Msg("account deletion failed")
		return mapAdapterError(err)
	}

	a.adapter.SetToken("")
	a.logger.Info().Str("user_id", session.UserID).Msg("account deleted")
	return nil
}
