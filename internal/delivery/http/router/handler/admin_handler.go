package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/delivery/http/response"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AdminHandler holds dependencies for admin user-management handlers
type AdminHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for provisioning a user
// with an explicit role.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// CreateFarmerRequest represents the request body for provisioning a farmer.
type CreateFarmerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "", users)
}

// CreateUser handles POST /users. The role must name a member of the closed
// role set; anything else fails validation rather than being coerced.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return domainerrors.NewFieldError(domainerrors.ErrRoleUnknown, map[string]string{
			"role": domainerrors.ErrRoleUnknown.Message(),
		})
	}

	user, err := h.userUC.ProvisionUser(c.Request().Context(), p, usecase.ProvisionUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "User created successfully", user)
}

// CreateFarmer handles POST /admin/create-farmer. The role is forced to
// farmer regardless of payload.
func (h *AdminHandler) CreateFarmer(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateFarmerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.ProvisionUser(c.Request().Context(), p, usecase.ProvisionUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.RoleFarmer,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Farmer created successfully", user)
}

// ListRoles handles GET /roles
func (h *AdminHandler) ListRoles(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	roles, err := h.userUC.ListRoles(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "", roles)
}
