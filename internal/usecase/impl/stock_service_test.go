package impl

import (
	"context"
	"testing"
	"time"

	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	mockRepo "beanwatch/internal/mocks/repository"
	"beanwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stockServiceFixtures holds all test dependencies for stock service tests.
type stockServiceFixtures struct {
	service   usecase.StockUsecase
	stockRepo *mockRepo.MockStockRepository
}

func createTestStockService(t *testing.T) stockServiceFixtures {
	stockRepo := mockRepo.NewMockStockRepository(t)

	service := NewStockService(StockServiceParams{
		StockRepo: stockRepo,
		Config:    newTestConfig(10),
		Logger:    newDiscardLogger(),
	})

	return stockServiceFixtures{
		service:   service,
		stockRepo: stockRepo,
	}
}

func farmerPrincipal() policy.Principal {
	return policy.Principal{ID: uuid.New(), Role: entity.RoleFarmer}
}

func adminPrincipal() policy.Principal {
	return policy.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
}

func sampleCreateInput() usecase.CreateStockInput {
	return usecase.CreateStockInput{
		BeanType:     "Arabica",
		Quantity:     120.5,
		Temperature:  21.3,
		Humidity:     62.0,
		Status:       entity.StatusGood,
		Location:     "Warehouse A",
		AirCondition: "Ventilated",
	}
}

func storedStock(ownerID uuid.UUID) *entity.StockCondition {
	return &entity.StockCondition{
		ID:           uuid.New(),
		UserID:       ownerID,
		BeanType:     "Arabica",
		Quantity:     120.5,
		Temperature:  21.3,
		Humidity:     62.0,
		Status:       entity.StatusGood,
		Location:     "Warehouse A",
		AirCondition: "Ventilated",
		LastUpdated:  time.Now().Add(-time.Hour),
	}
}

func TestStockService_Create_StampsOwner(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()

	fx.stockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StockCondition")).
		Run(func(ctx context.Context, stock *entity.StockCondition) {
			stock.ID = uuid.New()
		}).
		Return(nil)

	stock, err := fx.service.Create(ctx, principal, sampleCreateInput())

	require.NoError(t, err)
	assert.Equal(t, principal.ID, stock.UserID)
	assert.False(t, stock.LastUpdated.IsZero())
	assert.NotEqual(t, uuid.Nil, stock.ID)
}

func TestStockService_Get_OwnerReadsOwnRecord(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(principal.ID)

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	found, err := fx.service.Get(ctx, principal, stock.ID)

	require.NoError(t, err)
	assert.Equal(t, stock, found)
}

func TestStockService_Get_AdminReadsAnyRecord(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	stock := storedStock(uuid.New())

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	found, err := fx.service.Get(ctx, principal, stock.ID)

	require.NoError(t, err)
	assert.Equal(t, stock, found)
}

// A farmer probing another farmer's record gets the same answer as probing a
// record that does not exist.
func TestStockService_Get_OtherFarmerReadsNotFound(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(uuid.New())

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	found, err := fx.service.Get(ctx, principal, stock.ID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrStockNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStockService_Get_MissingRecord(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stockID := uuid.New()

	fx.stockRepo.EXPECT().FindByID(ctx, stockID).Return(nil, repository.ErrStockNotFound)

	found, err := fx.service.Get(ctx, principal, stockID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrStockNotFound)
}

func TestStockService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(principal.ID)
	previousUpdate := stock.LastUpdated

	newTemperature := 25.8
	newStatus := entity.StatusWarning
	input := usecase.UpdateStockInput{
		Temperature: &newTemperature,
		Status:      &newStatus,
	}

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	fx.stockRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.StockCondition")).
		Run(func(ctx context.Context, updated *entity.StockCondition) {
			assert.Equal(t, newTemperature, updated.Temperature)
			assert.Equal(t, newStatus, updated.Status)
			assert.Equal(t, "Arabica", updated.BeanType)
			assert.Equal(t, 62.0, updated.Humidity)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, principal, stock.ID, input)

	require.NoError(t, err)
	assert.Equal(t, principal.ID, updated.UserID)
	assert.True(t, updated.LastUpdated.After(previousUpdate))
}

func TestStockService_Update_OtherFarmerGetsNotFound(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(uuid.New())

	newTemperature := 25.8
	input := usecase.UpdateStockInput{Temperature: &newTemperature}

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	updated, err := fx.service.Update(ctx, principal, stock.ID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrStockNotFound)
}

func TestStockService_Delete_Owner(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(principal.ID)

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)
	fx.stockRepo.EXPECT().Delete(ctx, stock.ID).Return(nil)

	err := fx.service.Delete(ctx, principal, stock.ID)

	require.NoError(t, err)
}

func TestStockService_Delete_OtherFarmerGetsNotFound(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	stock := storedStock(uuid.New())

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

	err := fx.service.Delete(ctx, principal, stock.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStockNotFound)
}

func TestStockService_List_FarmerGetsOwnPage(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()
	ownerID := principal.ID
	rows := []*entity.StockCondition{storedStock(ownerID), storedStock(ownerID)}

	fx.stockRepo.EXPECT().
		FindPage(ctx, policy.ListScope{OwnerID: &ownerID}, 1, 10).
		Return(rows, int64(2), nil)

	output, err := fx.service.List(ctx, principal, usecase.PageInput{})

	require.NoError(t, err)
	require.NotNil(t, output.Page)
	assert.Nil(t, output.Summary)
	assert.Equal(t, rows, output.Page.Items)
	assert.Equal(t, int64(2), output.Page.Total)
	assert.Equal(t, 1, output.Page.Page)
	assert.Equal(t, 10, output.Page.PerPage)
}

func TestStockService_List_AdminGetsSummary(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	latest := storedStock(uuid.New())

	fx.stockRepo.EXPECT().
		Aggregate(ctx).
		Return(&repository.AggregateSummary{
			TotalUsers:     3,
			AvgTemperature: 22.4567,
			AvgHumidity:    55.5549,
		}, nil)

	fx.stockRepo.EXPECT().FindLatest(ctx).Return(latest, nil)

	output, err := fx.service.List(ctx, principal, usecase.PageInput{})

	require.NoError(t, err)
	require.NotNil(t, output.Summary)
	assert.Nil(t, output.Page)
	assert.Equal(t, int64(3), output.Summary.TotalUsers)
	assert.Equal(t, 22.46, output.Summary.AvgTemperature)
	assert.Equal(t, 55.55, output.Summary.AvgHumidity)
	assert.Equal(t, latest, output.Summary.LatestCondition)
}

func TestStockService_List_AdminSummaryEmptyTable(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := adminPrincipal()

	fx.stockRepo.EXPECT().
		Aggregate(ctx).
		Return(&repository.AggregateSummary{}, nil)

	fx.stockRepo.EXPECT().FindLatest(ctx).Return(nil, repository.ErrStockNotFound)

	output, err := fx.service.List(ctx, principal, usecase.PageInput{})

	require.NoError(t, err)
	require.NotNil(t, output.Summary)
	assert.Equal(t, int64(0), output.Summary.TotalUsers)
	assert.Equal(t, 0.0, output.Summary.AvgTemperature)
	assert.Equal(t, 0.0, output.Summary.AvgHumidity)
	assert.Nil(t, output.Summary.LatestCondition)
}

func TestStockService_ListAll_Admin(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := adminPrincipal()
	rows := []*entity.StockCondition{storedStock(uuid.New())}

	fx.stockRepo.EXPECT().
		FindPage(ctx, policy.ListScope{}, 2, 25).
		Return(rows, int64(40), nil)

	page, err := fx.service.ListAll(ctx, principal, usecase.PageInput{Page: 2, PerPage: 25})

	require.NoError(t, err)
	assert.Equal(t, rows, page.Items)
	assert.Equal(t, int64(40), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 25, page.PerPage)
}

func TestStockService_ListAll_FarmerForbidden(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := farmerPrincipal()

	page, err := fx.service.ListAll(ctx, principal, usecase.PageInput{})

	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStockService_ListAll_ClampsPageSize(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	principal := adminPrincipal()

	fx.stockRepo.EXPECT().
		FindPage(ctx, policy.ListScope{}, 1, 100).
		Return([]*entity.StockCondition{}, int64(0), nil)

	page, err := fx.service.ListAll(ctx, principal, usecase.PageInput{Page: -3, PerPage: 5000})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PerPage)
}
