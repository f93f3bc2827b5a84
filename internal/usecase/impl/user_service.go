// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	"pluvio/internal/domain/repository"
	"pluvio/internal/domain/service"
	"pluvio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account with a hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserSummary, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("email and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.logger.Warn("Registration for existing email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.UserSummary{ID: newUser.ID, Email: newUser.Email}, nil
}

// Login verifies credentials and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// bcrypt comparison is CPU-bound; it happens outside any storage call.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{ID: user.ID, Email: user.Email, Token: token}, nil
}

// GetDetails resolves an account id from its email, without any credential
// check. The original client calls this while restoring a remembered
// session; nothing proves the caller owns the email.
func (srv *userService) GetDetails(ctx context.Context, input *usecase.DetailsInput) (*usecase.UserSummary, error) {
	if input == nil || input.Email == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("details lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user for details lookup")
	}

	return &usecase.UserSummary{ID: user.ID, Email: user.Email}, nil
}
