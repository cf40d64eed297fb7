package impl

import (
	"context"
	"log/slog"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/domain/service"
	"beanwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves every account with its role.
func (srv *userService) ListUsers(ctx context.Context, p policy.Principal) ([]*entity.User, error) {
	if err := policy.Authorize(p, policy.OpListUsers); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ProvisionUser creates an account with an explicit, already-parsed role.
func (srv *userService) ProvisionUser(ctx context.Context, p policy.Principal, input usecase.ProvisionUserInput) (*entity.User, error) {
	if err := policy.Authorize(p, policy.OpProvisionUser); err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrRoleUnknown
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
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
		srv.log(ctx).Warn("User provisioning failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute provisioning transaction")
	}

	srv.log(ctx).Info("User provisioned",
		slog.Any("userID", newUser.ID),
		slog.String("role", newUser.Role.String()),
		slog.Any("provisionedBy", p.ID))

	return newUser, nil
}

// ListRoles retrieves the closed role catalog.
func (srv *userService) ListRoles(ctx context.Context, p policy.Principal) ([]*entity.RoleEntry, error) {
	if err := policy.Authorize(p, policy.OpListRoles); err != nil {
		return nil, err
	}

	roles, err := srv.roleRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list roles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}
