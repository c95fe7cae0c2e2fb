package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"food/config"
	deliverycontext "food/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one access log line per request.
// Outside debug mode only failed requests are logged.
type AccessLogMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewAccessLogMiddleware creates the access log middleware.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			// the error handler has not run yet; approximate its status
			status = http.StatusInternalServerError
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		if m.debug || status >= http.StatusBadRequest {
			m.write(c, status, time.Since(start), err)
		}

		return err
	}
}

func (m *AccessLogMiddleware) write(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		attrs = append(attrs, slog.String("user_id", principal.UserID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
