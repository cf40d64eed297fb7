// Package handler contains the echo handlers for every endpoint.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/delivery/http/response"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for self-registration.
// There is no role field on purpose; self-registration is always a farmer.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the payload returned on a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        any    `json:"user"`
}

// Register handles POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "User registered successfully", out.User)
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		User:        out.User,
	})
}

// Logout handles POST /logout. It revokes exactly the session whose token
// made this call.
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, ok := deliverycontext.GetTokenID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.authUC.Logout(c.Request().Context(), tokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Logged out successfully", nil)
}
