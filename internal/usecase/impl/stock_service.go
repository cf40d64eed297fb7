package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"beanwatch/config"
	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackPerPage = 10
	maxPerPage      = 100
)

// stockService implements the StockUsecase interface.
type stockService struct {
	stockRepo      repository.StockRepository
	defaultPerPage int
	logger         *slog.Logger
}

// StockServiceParams holds dependencies for StockService, injected by Fx.
type StockServiceParams struct {
	fx.In

	StockRepo repository.StockRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStockService is the constructor for stockService.
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	defaultPerPage := fallbackPerPage
	if params.Config != nil && params.Config.Pagination != nil && params.Config.Pagination.PerPage > 0 {
		defaultPerPage = params.Config.Pagination.PerPage
	}

	return &stockService{
		stockRepo:      params.StockRepo,
		defaultPerPage: defaultPerPage,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *stockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new reading. The owner is always the principal; any
// owner id in the payload never reaches this layer.
func (srv *stockService) Create(ctx context.Context, p policy.Principal, input usecase.CreateStockInput) (*entity.StockCondition, error) {
	stock := &entity.StockCondition{
		UserID:       p.ID,
		BeanType:     input.BeanType,
		Quantity:     input.Quantity,
		Temperature:  input.Temperature,
		Humidity:     input.Humidity,
		Status:       input.Status,
		Location:     input.Location,
		AirCondition: input.AirCondition,
		ActionTaken:  input.ActionTaken,
		LastUpdated:  time.Now(),
	}

	if err := srv.stockRepo.Create(ctx, stock); err != nil {
		srv.log(ctx).Error("Failed to create stock condition", slog.Any("userID", p.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create stock condition")
	}

	srv.log(ctx).Debug("Stock condition created", slog.Any("stockID", stock.ID), slog.Any("userID", p.ID))

	return stock, nil
}

// Get retrieves a single record if the principal may see it.
func (srv *stockService) Get(ctx context.Context, p policy.Principal, id uuid.UUID) (*entity.StockCondition, error) {
	return srv.loadAuthorized(ctx, p, id)
}

// Update partially updates a record. Nil input fields keep their stored
// value; the owner never changes.
func (srv *stockService) Update(ctx context.Context, p policy.Principal, id uuid.UUID, input usecase.UpdateStockInput) (*entity.StockCondition, error) {
	stock, err := srv.loadAuthorized(ctx, p, id)
	if err != nil {
		return nil, err
	}

	applyStockPatch(stock, input)
	stock.LastUpdated = time.Now()

	if err := srv.stockRepo.Update(ctx, stock); err != nil {
		srv.log(ctx).Error("Failed to update stock condition", slog.Any("stockID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update stock condition")
	}

	srv.log(ctx).Debug("Stock condition updated", slog.Any("stockID", id), slog.Any("userID", p.ID))

	return stock, nil
}

// Delete removes a record if the principal may modify it.
func (srv *stockService) Delete(ctx context.Context, p policy.Principal, id uuid.UUID) error {
	if _, err := srv.loadAuthorized(ctx, p, id); err != nil {
		return err
	}

	if err := srv.stockRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete stock condition", slog.Any("stockID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete stock condition")
	}

	srv.log(ctx).Debug("Stock condition deleted", slog.Any("stockID", id), slog.Any("userID", p.ID))

	return nil
}

// List answers the shared listing endpoint. Farmers get a page of their own
// rows; admins get the aggregate summary instead of rows.
func (srv *stockService) List(ctx context.Context, p policy.Principal, page usecase.PageInput) (*usecase.StockListOutput, error) {
	if policy.Aggregated(p) {
		summary, err := srv.buildSummary(ctx)
		if err != nil {
			return nil, err
		}

		return &usecase.StockListOutput{Summary: summary}, nil
	}

	rows, err := srv.loadPage(ctx, policy.ScopeFor(p), page)
	if err != nil {
		return nil, err
	}

	return &usecase.StockListOutput{Page: rows}, nil
}

// ListAll lists every record with owners. Non-admins are refused outright;
// there is no record whose existence could leak here.
func (srv *stockService) ListAll(ctx context.Context, p policy.Principal, page usecase.PageInput) (*usecase.StockPage, error) {
	if err := policy.Authorize(p, policy.OpListAll); err != nil {
		return nil, err
	}

	return srv.loadPage(ctx, policy.ListScope{}, page)
}

// loadAuthorized fetches a record and applies the single-record access rule.
// Denials surface as not-found so they read exactly like a missing record.
func (srv *stockService) loadAuthorized(ctx context.Context, p policy.Principal, id uuid.UUID) (*entity.StockCondition, error) {
	stock, err := srv.stockRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock condition")
	}

	if err := policy.AuthorizeRecord(p, stock.UserID); err != nil {
		return nil, err
	}

	return stock, nil
}

func (srv *stockService) loadPage(ctx context.Context, scope policy.ListScope, page usecase.PageInput) (*usecase.StockPage, error) {
	pageNum, perPage := srv.normalizePage(page)

	items, total, err := srv.stockRepo.FindPage(ctx, scope, pageNum, perPage)
	if err != nil {
		srv.log(ctx).Error("Failed to list stock conditions", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stock conditions")
	}

	return &usecase.StockPage{
		Items:   items,
		Total:   total,
		Page:    pageNum,
		PerPage: perPage,
	}, nil
}

func (srv *stockService) buildSummary(ctx context.Context) (*usecase.StockSummary, error) {
	aggregate, err := srv.stockRepo.Aggregate(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate stock conditions", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate stock conditions")
	}

	latest, err := srv.stockRepo.FindLatest(ctx)
	if err != nil && !errors.Is(err, repository.ErrStockNotFound) {
		srv.log(ctx).Error("Failed to load latest stock condition", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load latest stock condition")
	}

	return &usecase.StockSummary{
		TotalUsers:      aggregate.TotalUsers,
		AvgTemperature:  roundTwoPlaces(aggregate.AvgTemperature),
		AvgHumidity:     roundTwoPlaces(aggregate.AvgHumidity),
		LatestCondition: latest,
	}, nil
}

func (srv *stockService) normalizePage(page usecase.PageInput) (int, int) {
	pageNum := page.Page
	if pageNum < 1 {
		pageNum = 1
	}

	perPage := page.PerPage
	if perPage < 1 {
		perPage = srv.defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return pageNum, perPage
}

func applyStockPatch(stock *entity.StockCondition, input usecase.UpdateStockInput) {
	if input.BeanType != nil {
		stock.BeanType = *input.BeanType
	}
	if input.Quantity != nil {
		stock.Quantity = *input.Quantity
	}
	if input.Temperature != nil {
		stock.Temperature = *input.Temperature
	}
	if input.Humidity != nil {
		stock.Humidity = *input.Humidity
	}
	if input.Status != nil {
		stock.Status = *input.Status
	}
	if input.Location != nil {
		stock.Location = *input.Location
	}
	if input.AirCondition != nil {
		stock.AirCondition = *input.AirCondition
	}
	if input.ActionTaken != nil {
		stock.ActionTaken = input.ActionTaken
	}
}

func roundTwoPlaces(v float64) float64 {
	return math.Round(v*100) / 100
}
