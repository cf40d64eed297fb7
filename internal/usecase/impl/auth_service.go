// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/domain/service"
	"beanwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenName is the label stored with every issued session record.
const tokenName = "auth_token"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Self-registration always yields a farmer,
// no matter what the caller sends; role selection is an admin operation.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleFarmer,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return emailTakenError()
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return emailTakenError()
			}

			return errors.Wrap(createErr, "failed to create user")
		}

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process and issues a revocable bearer token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	loggedInUser, err := srv.loadLoginUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, credentialsError()
	}

	accessToken, tokenID, err := srv.tokenService.GenerateToken(loggedInUser.ID, loggedInUser.Role)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	session := &entity.AccessToken{
		ID:        tokenID,
		UserID:    loggedInUser.ID,
		Name:      tokenName,
		ExpiresAt: time.Now().Add(srv.tokenService.GetTokenDuration()),
	}
	if err := srv.tokenRepo.CreateToken(ctx, session); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist access token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Any("userID", loggedInUser.ID),
		slog.String("role", loggedInUser.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		User:        loggedInUser,
	}, nil
}

// Logout revokes the presented token's session. Revoking an already-deleted
// session is a no-op; the client outcome is the same.
func (srv *authService) Logout(ctx context.Context, tokenID uuid.UUID) error {
	if err := srv.tokenRepo.DeleteToken(ctx, tokenID); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete access token")
	}

	srv.log(ctx).Debug("Session revoked", slog.Any("tokenID", tokenID))

	return nil
}

// loadLoginUser loads the user from primary in a short transaction to avoid
// stale reads on replicas. A missing account reads as bad credentials.
func (srv *authService) loadLoginUser(ctx context.Context, email string) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var findErr error
		loggedInUser, findErr = userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return credentialsError()
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return loggedInUser, nil
}

// credentialsError reports a login failure the way a validation failure on
// the email field reads, without hinting whether the account exists.
func credentialsError() error {
	return domainerrors.NewFieldError(domainerrors.ErrInvalidCredentials, map[string]string{
		"email": domainerrors.ErrInvalidCredentials.Message(),
	})
}

// emailTakenError reports a duplicate email as a field-level validation failure.
func emailTakenError() error {
	return domainerrors.NewFieldError(domainerrors.ErrEmailTaken, map[string]string{
		"email": domainerrors.ErrEmailTaken.Message(),
	})
}
