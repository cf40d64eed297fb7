package impl

import (
	"context"
	"testing"
	"time"

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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Farmer",
		Email:    "farmer@example.com",
		Password: "password123",
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

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

// Self-registration always yields a farmer account, never an admin.
func TestAuthService_Register_AssignsFarmerRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Aspiring Admin",
		Email:    "sneaky@example.com",
		Password: "password123",
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
					assert.Equal(t, entity.RoleFarmer, user.Role)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, output.User.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Farmer",
		Email:    "taken@example.com",
		Password: "password123",
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

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

// A lost race on the unique index reads the same as the precheck catching it.
func TestAuthService_Register_DuplicateEmailOnInsert(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Farmer",
		Email:    "raced@example.com",
		Password: "password123",
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
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "farmer@example.com",
		Password: "password123",
	}

	userID := uuid.New()
	tokenID := uuid.New()
	storedUser := &entity.User{
		ID:           userID,
		Name:         "Test Farmer",
		Email:        input.Email,
		PasswordHash: "hashed_password",
		Role:         entity.RoleFarmer,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(storedUser, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(userID, entity.RoleFarmer).Return("signed-token", tokenID, nil)
	fx.tokenService.EXPECT().GetTokenDuration().Return(24 * time.Hour)

	fx.tokenRepo.EXPECT().
		CreateToken(ctx, mock.AnythingOfType("*entity.AccessToken")).
		Run(func(ctx context.Context, token *entity.AccessToken) {
			assert.Equal(t, tokenID, token.ID)
			assert.Equal(t, userID, token.UserID)
			assert.False(t, token.ExpiresAt.IsZero())
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, storedUser, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "farmer@example.com",
		Password: "wrong-password",
	}

	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		Role:         entity.RoleFarmer,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(storedUser, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// An unknown email answers exactly like a wrong password.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tokenID := uuid.New()

	fx.tokenRepo.EXPECT().DeleteToken(ctx, tokenID).Return(nil)

	err := fx.service.Logout(ctx, tokenID)

	require.NoError(t, err)
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tokenID := uuid.New()

	fx.tokenRepo.EXPECT().DeleteToken(ctx, tokenID).Return(repository.ErrTokenNotFound)

	err := fx.service.Logout(ctx, tokenID)

	require.NoError(t, err)
}
