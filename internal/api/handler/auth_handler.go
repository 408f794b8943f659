package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// AuthHandler handles login and session refresh.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type sessionResponse struct {
	Success bool           `json:"success"`
	User    userResponse   `json:"user"`
	Session *ports.Session `json:"session"`
}

// Login authenticates a user and returns a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		User:    toUserResponse(caller),
		Session: session,
	})
}

// Refresh exchanges a refresh token for a fresh session.
//
// @Summary      Refresh session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, session, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		User:    toUserResponse(caller),
		Session: session,
	})
}

func toUserResponse(caller *domain.Caller) userResponse {
	return userResponse{
		ID:    caller.IdentityID,
		Email: caller.Email,
		Role:  caller.Role,
	}
}
