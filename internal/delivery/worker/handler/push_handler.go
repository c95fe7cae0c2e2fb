// Package handler consumes Pub/Sub push deliveries in the event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"food/config"
	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/constants"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	attributeEventType = "event_type"
	attributeRequestID = "request_id"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns restaurant.created events into NEW_RESTAURANT notifications.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	notifications  usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
}

// NewPushHandler verifies push tokens only for the Google provider outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	verifyPushAuth := cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop

	var audience string
	if cfg.Worker != nil {
		audience = cfg.Worker.Audience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notifications:  params.Notifications,
	}
}

// HandlePush acknowledges with 204 whatever cannot ever succeed and answers 500
// to transient failures so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			log.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		log.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	if eventType := pushMsg.Message.Attributes[attributeEventType]; eventType != "" && eventType != constants.EventTypeRestaurantCreated {
		log.Info("[Worker] Ignoring event", slog.String("event_type", eventType), slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusNoContent)
	}

	event, err := decodeEvent(pushMsg.Message.Data)
	if err != nil {
		log.Error("[Worker] Dropping malformed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing restaurant.created",
		slog.String("restaurant_id", event.RestaurantID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.notifications.Broadcast(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Broadcast failed",
			slog.String("restaurant_id", event.RestaurantID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.NoContent(http.StatusNoContent)
	}

	reqLogger.Info("[Worker] Broadcast processed",
		slog.String("restaurant_id", event.RestaurantID),
		slog.Int("recipients", result.Recipients),
		slog.Int("delivered", result.Delivered),
	)

	return c.NoContent(http.StatusNoContent)
}

func decodeEvent(data string) (*service.RestaurantCreatedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.RestaurantCreatedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse restaurant.created event")
	}
	if event.RestaurantID == "" {
		return nil, errors.New("restaurant_id is missing")
	}

	return &event, nil
}

// isRetryable reports whether a redelivery could succeed. Client-side
// application errors such as an unknown restaurant never will.
func isRetryable(err error) bool {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RestaurantCreatedEvent) string {
	if requestID := pushMsg.Message.Attributes[attributeRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken validates the OIDC token Pub/Sub attaches to authenticated push subscriptions.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
