package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"food/internal/delivery/api/response"
	domainerrors "food/internal/domain/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the /notifications resource.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

type CreateNotificationRequest struct {
	UserID       uuid.UUID  `json:"user_id"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Type         string     `json:"type"`
	RestaurantID *uuid.UUID `json:"restaurant_id"`
}

type UpdateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Read    *bool  `json:"read"`
}

type markedResponse struct {
	Updated int64 `json:"updated"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notificationUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

func (h *NotificationHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id", "notification id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification retrieved successfully")
}

func (h *NotificationHandler) ListByUser(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

func (h *NotificationHandler) ListUnreadByUser(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListUnreadByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Unread notifications retrieved successfully")
}

func (h *NotificationHandler) CountUnreadByUser(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.notificationUC.CountUnreadByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countResponse{Count: count}, "Unread notifications counted successfully")
}

func (h *NotificationHandler) ListByType(c echo.Context) error {
	notifications, err := h.notificationUC.ListByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// ListByDateRange expects RFC 3339 timestamps in startDate and endDate.
func (h *NotificationHandler) ListByDateRange(c echo.Context) error {
	start, err := queryTime(c, "startDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	end, err := queryTime(c, "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// Create answers 201 when the push went out and 200 WARNING when the notification was only saved.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.notificationUC.Create(c.Request().Context(), &usecase.CreateNotificationInput{
		UserID:       req.UserID,
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Delivered {
		return response.Warning(c, http.StatusOK, result.Notification, "Notification saved but not delivered")
	}

	return response.Created(c, result.Notification, "Notification created and delivered successfully")
}

func (h *NotificationHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id", "notification id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.Update(c.Request().Context(), id, &usecase.UpdateNotificationInput{
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Read:    req.Read,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification updated successfully")
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id", "notification id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := paramUUID(c, "id", "notification id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.notificationUC.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, markedResponse{Updated: updated}, fmt.Sprintf("%d notifications marked as read", updated))
}

// queryTime returns nil for an absent parameter.
func queryTime(c echo.Context, name string) (*time.Time, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("%s must be an RFC 3339 timestamp", name))
	}

	return &parsed, nil
}
