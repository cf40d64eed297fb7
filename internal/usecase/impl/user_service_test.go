package impl

import (
	"context"
	"testing"

	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/repository"
	mockRepo "beanwatch/internal/mocks/repository"
	mockSvc "beanwatch/internal/mocks/service"
	"beanwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		RoleRepo:  roleRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		hasher:    hasher,
	}
}

func TestUserService_ListUsers_Admin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	users := []*entity.User{
		{ID: uuid.New(), Name: "Admin", Role: entity.RoleAdmin},
		{ID: uuid.New(), Name: "Farmer", Role: entity.RoleFarmer},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	found, err := fx.service.ListUsers(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, users, found)
}

func TestUserService_ListUsers_FarmerForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := farmerPrincipal()

	found, err := fx.service.ListUsers(ctx, principal)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ProvisionUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	input := usecase.ProvisionUserInput{
		Name:     "New Admin",
		Email:    "admin2@example.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	created, err := fx.service.ProvisionUser(ctx, principal, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUserService_ProvisionUser_FarmerForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	input := usecase.ProvisionUserInput{
		Name:     "New Admin",
		Email:    "admin2@example.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	}

	created, err := fx.service.ProvisionUser(ctx, principal, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ProvisionUser_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	input := usecase.ProvisionUserInput{
		Name:     "Viewer",
		Email:    "viewer@example.com",
		Password: "password123",
		Role:     entity.Role("Viewer"),
	}

	created, err := fx.service.ProvisionUser(ctx, principal, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrRoleUnknown)
}

func TestUserService_ProvisionUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	input := usecase.ProvisionUserInput{
		Name:     "New Farmer",
		Email:    "taken@example.com",
		Password: "password123",
		Role:     entity.RoleFarmer,
	}

	existingUser := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Role:  entity.RoleFarmer,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existingUser, nil)

			return fn(mockFactory)
		})

	created, err := fx.service.ProvisionUser(ctx, principal, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_ListRoles_Admin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	roles := []*entity.RoleEntry{
		{ID: 1, Name: "Admin", Guard: "api"},
		{ID: 2, Name: "Farmer", Guard: "api"},
	}

	fx.roleRepo.EXPECT().FindAll(ctx).Return(roles, nil)

	found, err := fx.service.ListRoles(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, roles, found)
}

func TestUserService_ListRoles_FarmerForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := farmerPrincipal()

	found, err := fx.service.ListRoles(ctx, principal)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
