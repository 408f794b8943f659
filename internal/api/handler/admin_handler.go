package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/api/metrics"
	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// AdminHandler handles the administrative account operations.
type AdminHandler struct {
	provisioning ports.ProvisioningService
	directory    ports.DirectoryService
}

func NewAdminHandler(provisioning ports.ProvisioningService, directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{provisioning: provisioning, directory: directory}
}

type createUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"business_name" validate:"required"`
	Secret       string `json:"secret,omitempty"`
	Role         string `json:"role,omitempty"`
}

type createUserResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    createdUserDetail `json:"user"`
	Warning string            `json:"warning,omitempty"`
}

type createdUserDetail struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
}

type updateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Role         string `json:"role,omitempty"`
	NewPassword  string `json:"new_password,omitempty"`
}

type updateUserResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	UpdatedFields map[string]string `json:"updated_fields"`
}

type deleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateUser provisions a new account. A request carrying the
// provisioning secret bootstraps an admin; otherwise the bearer token
// must belong to an existing admin.
//
// @Summary      Create a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details (include secret for admin bootstrap)"
// @Success      200   {object}  createUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /admin/create-user [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var authz ports.Authorizer
	if req.Secret != "" {
		authz = ports.SecretAuthorizer{Secret: req.Secret}
	} else {
		authz = ports.BearerAuthorizer{Token: bearerToken(c)}
	}

	result, err := h.provisioning.CreateAccount(c.Request().Context(), authz, ports.CreateAccountInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		RoleHint:     req.Role,
	})
	if err != nil {
		metrics.ProvisioningErrorsTotal.WithLabelValues(provisioningErrorReason(err)).Inc()
		return err
	}

	metrics.AccountsProvisionedTotal.WithLabelValues(result.Role).Inc()

	message := "User created successfully and welcome email sent"
	if result.Warning != "" {
		message = "User created successfully"
	}

	return c.JSON(http.StatusOK, createUserResponse{
		Success: true,
		Message: message,
		User: createdUserDetail{
			ID:           result.ID,
			Email:        result.Email,
			Role:         result.Role,
			Name:         result.Name,
			BusinessName: result.BusinessName,
		},
		Warning: result.Warning,
	})
}

// UpdateUser applies a partial update to an existing account.
//
// @Summary      Update a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/update-user [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.directory.UpdateAccount(c.Request().Context(), caller, ports.UpdateAccountInput{
		Email:        req.Email,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Role:         req.Role,
		NewPassword:  req.NewPassword,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateUserResponse{
		Success:       true,
		Message:       "User updated successfully",
		UpdatedFields: result.Fields,
	})
}

// DeleteUser removes an account: client record, profile, identity.
//
// @Summary      Delete a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteUserRequest  true  "Account email"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /admin/delete-user [post]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.directory.DeleteAccount(c.Request().Context(), caller, req.Email); err != nil {
		return err
	}

	metrics.AccountDeletionsTotal.Inc()

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

func provisioningErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrIdentityExists):
		return "identity_exists"
	case errors.Is(err, domain.ErrIdentityCreation):
		return "identity_creation"
	case errors.Is(err, domain.ErrProfileUpdate):
		return "profile_update"
	case errors.Is(err, domain.ErrClientRecord):
		return "client_record"
	default:
		return "internal"
	}
}
