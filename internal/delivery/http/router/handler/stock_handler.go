package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/delivery/http/response"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for stock-condition handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// CreateStockRequest represents the request body for recording a reading.
// There is no user id field; ownership comes from the token alone.
type CreateStockRequest struct {
	BeanType     string   `json:"bean_type" validate:"required,max=255"`
	Quantity     *float64 `json:"quantity" validate:"required,gte=0"`
	Temperature  *float64 `json:"temperature" validate:"required"`
	Humidity     *float64 `json:"humidity" validate:"required,gte=0,lte=100"`
	Status       string   `json:"status" validate:"required,oneof=Good Warning Critical"`
	Location     string   `json:"location" validate:"required,max=255"`
	AirCondition string   `json:"air_condition" validate:"required,max=255"`
	ActionTaken  *string  `json:"action_taken"`
}

// UpdateStockRequest represents a partial update; absent fields keep their
// stored value. A user id in the payload is simply not bindable.
type UpdateStockRequest struct {
	BeanType     *string  `json:"bean_type" validate:"omitempty,max=255"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Temperature  *float64 `json:"temperature"`
	Humidity     *float64 `json:"humidity"`
	Status       *string  `json:"status" validate:"omitempty,oneof=Good Warning Critical"`
	Location     *string  `json:"location" validate:"omitempty,max=255"`
	AirCondition *string  `json:"air_condition" validate:"omitempty,max=255"`
	ActionTaken  *string  `json:"action_taken"`
}

// StockPageResponse is one page of readings plus pagination metadata.
type StockPageResponse struct {
	Items   []*entity.StockCondition `json:"data"`
	Total   int64                    `json:"total"`
	Page    int                      `json:"page"`
	PerPage int                      `json:"per_page"`
}

// StockSummaryResponse is the aggregate view answered to admins on GET /stocks.
type StockSummaryResponse struct {
	TotalUsers      int64                  `json:"total_users"`
	AvgTemperature  float64                `json:"avg_temperature"`
	AvgHumidity     float64                `json:"avg_humidity"`
	LatestCondition *entity.StockCondition `json:"latest_condition"`
}

// StockListAllResponse is the full admin listing with its row count.
type StockListAllResponse struct {
	Count           int64                    `json:"count"`
	StockConditions []*entity.StockCondition `json:"stock_conditions"`
	Page            int                      `json:"page"`
	PerPage         int                      `json:"per_page"`
}

// Create handles POST /stocks
func (h *StockHandler) Create(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock condition input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	stock, err := h.stockUC.Create(c.Request().Context(), p, usecase.CreateStockInput{
		BeanType:     req.BeanType,
		Quantity:     *req.Quantity,
		Temperature:  *req.Temperature,
		Humidity:     *req.Humidity,
		Status:       entity.StockStatus(req.Status),
		Location:     req.Location,
		AirCondition: req.AirCondition,
		ActionTaken:  req.ActionTaken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Stock condition recorded successfully", stock)
}

// List handles GET /stocks. Farmers get their own rows; admins get the
// aggregate summary.
func (h *StockHandler) List(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	out, err := h.stockUC.List(c.Request().Context(), p, pageInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if out.Summary != nil {
		return response.Success(c, http.StatusOK, "", StockSummaryResponse{
			TotalUsers:      out.Summary.TotalUsers,
			AvgTemperature:  out.Summary.AvgTemperature,
			AvgHumidity:     out.Summary.AvgHumidity,
			LatestCondition: out.Summary.LatestCondition,
		})
	}

	return response.Success(c, http.StatusOK, "", StockPageResponse{
		Items:   out.Page.Items,
		Total:   out.Page.Total,
		Page:    out.Page.Page,
		PerPage: out.Page.PerPage,
	})
}

// Get handles GET /stocks/:id
func (h *StockHandler) Get(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := stockID(c)
	if err != nil {
		return err
	}

	stock, err := h.stockUC.Get(c.Request().Context(), p, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "", stock)
}

// Update handles PUT /stocks/:id
func (h *StockHandler) Update(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := stockID(c)
	if err != nil {
		return err
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock condition input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateStockInput{
		BeanType:     req.BeanType,
		Quantity:     req.Quantity,
		Temperature:  req.Temperature,
		Humidity:     req.Humidity,
		Location:     req.Location,
		AirCondition: req.AirCondition,
		ActionTaken:  req.ActionTaken,
	}
	if req.Status != nil {
		status := entity.StockStatus(*req.Status)
		input.Status = &status
	}

	stock, err := h.stockUC.Update(c.Request().Context(), p, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Stock condition updated successfully", stock)
}

// Delete handles DELETE /stocks/:id
func (h *StockHandler) Delete(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := stockID(c)
	if err != nil {
		return err
	}

	if err := h.stockUC.Delete(c.Request().Context(), p, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Stock condition deleted successfully", nil)
}

// ListAll handles GET /stock-conditions/all (admin)
func (h *StockHandler) ListAll(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	page, err := h.stockUC.ListAll(c.Request().Context(), p, pageInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "", StockListAllResponse{
		Count:           page.Total,
		StockConditions: page.Items,
		Page:            page.Page,
		PerPage:         page.PerPage,
	})
}

// stockID parses the path id. A malformed id reads as not-found, exactly
// like an unknown one.
func stockID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrStockNotFound
	}

	return id, nil
}

// pageInput reads pagination query parameters; invalid values fall back to
// the use case's defaults.
func pageInput(c echo.Context) usecase.PageInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	return usecase.PageInput{Page: page, PerPage: perPage}
}
