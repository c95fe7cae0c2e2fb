package handler

import (
	"log/slog"
	"net/http"

	"food/internal/delivery/api/response"
	"food/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the /users resource.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}

type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token"`
}

type ChangePasswordRequest struct {
	Password string `json:"password"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userUC.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

func (h *UserHandler) ExistsByEmail(c echo.Context) error {
	exists, err := h.userUC.ExistsByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, existsResponse{Exists: exists}, "Email lookup completed")
}

func (h *UserHandler) ListByType(c echo.Context) error {
	users, err := h.userUC.ListByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

func (h *UserHandler) ListActive(c echo.Context) error {
	users, err := h.userUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "Active users retrieved successfully")
}

func (h *UserHandler) CountByType(c echo.Context) error {
	count, err := h.userUC.CountByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countResponse{Count: count}, "Users counted successfully")
}

func (h *UserHandler) Create(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user, "User created successfully")
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Update(c.Request().Context(), id, &usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Active:    req.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

func (h *UserHandler) ToggleStatus(c echo.Context) error {
	id, err := paramUUID(c, "id", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, statusMessage("User", user.Active))
}

// UpdatePushToken only acts on the caller's own account.
func (h *UserHandler) UpdatePushToken(c echo.Context) error {
	id, err := ownAccountParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePushTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdatePushToken(c.Request().Context(), id, req.PushToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Push token updated successfully")
}

// ChangePassword only acts on the caller's own account.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := ownAccountParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), id, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
