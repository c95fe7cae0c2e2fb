package handler

import (
	"log/slog"
	"net/http"

	"food/internal/delivery/api/response"
	deliverycontext "food/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:     params.DB,
		logger: params.Logger,
	}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Database ping failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "Database is unreachable")
	}

	return response.Success(c, http.StatusOK, healthStatus{Status: "UP", Database: "UP"}, "Service is healthy")
}
