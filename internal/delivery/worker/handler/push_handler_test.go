package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food/config"
	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/constants"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

// mockNotificationUsecase only implements Broadcast; other methods panic if reached.
type mockNotificationUsecase struct {
	usecase.NotificationUsecase
	mock.Mock
}

func (m *mockNotificationUsecase) Broadcast(ctx context.Context, event *service.RestaurantCreatedEvent) (*usecase.BroadcastResult, error) {
	args := m.Called(ctx, event)
	if result, ok := args.Get(0).(*usecase.BroadcastResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockNotificationUsecase) {
	t.Helper()

	notifications := new(mockNotificationUsecase)
	t.Cleanup(func() { notifications.AssertExpectations(t) })

	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifications: notifications,
	})

	return h, notifications
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/food-worker"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event service.RestaurantCreatedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_Broadcasts(t *testing.T) {
	h, notifications := createTestPushHandler(t, &config.Config{})

	event := service.RestaurantCreatedEvent{RestaurantID: "11111111-1111-1111-1111-111111111111", Name: "Casa"}
	notifications.On("Broadcast",
		mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
		}),
		mock.MatchedBy(func(got *service.RestaurantCreatedEvent) bool {
			return got.RestaurantID == event.RestaurantID && got.Name == "Casa"
		}),
	).Return(&usecase.BroadcastResult{Recipients: 3, Delivered: 2}, nil).Once()

	rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{
		"event_type": constants.EventTypeRestaurantCreated,
		"request_id": "req-42",
	}), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPushHandler_DropsWhatCannotSucceed(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
	}{
		{
			name: "invalid json",
			body: func(*testing.T) string { return "{" },
		},
		{
			name: "invalid base64",
			body: func(t *testing.T) string { return pushBody(t, "!!!", nil) },
		},
		{
			name: "invalid event payload",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil)
			},
		},
		{
			name: "missing restaurant id",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, service.RestaurantCreatedEvent{}), nil) },
		},
		{
			name: "other event type",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, service.RestaurantCreatedEvent{RestaurantID: "r"}), map[string]string{"event_type": "menu.updated"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := createTestPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			notifications.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_BroadcastErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unknown restaurant is acknowledged", err: domainerrors.ErrRestaurantNotFound, status: http.StatusNoContent},
		{name: "invalid id is acknowledged", err: domainerrors.NewValidationError("Invalid restaurant id: x"), status: http.StatusNoContent},
		{name: "database failure is retried", err: domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to list diners"), status: http.StatusInternalServerError},
		{name: "unexpected failure is retried", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := createTestPushHandler(t, &config.Config{})
			notifications.On("Broadcast", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := servePush(h, pushBody(t, encodeEvent(t, service.RestaurantCreatedEvent{RestaurantID: "x"}), nil), nil)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenForGoogleProvider(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		Worker: &config.WorkerConfig{Audience: "https://worker.example.com/push"},
	}
	cfg.Env.Env = "production"

	tests := []struct {
		name      string
		header    http.Header
		validator TokenValidator
		status    int
	}{
		{
			name:   "missing token",
			status: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: http.Header{echo.HeaderAuthorization: {"Bearer bad"}},
			validator: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("signature mismatch")
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong issuer",
			header: http.Header{echo.HeaderAuthorization: {"Bearer token"}},
			validator: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: http.Header{echo.HeaderAuthorization: {"Bearer token"}},
			validator: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				if token != "token" || audience != "https://worker.example.com/push" {
					return nil, errors.New("unexpected token or audience")
				}

				return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
			},
			status: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := createTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)
			if tt.validator != nil {
				h.validateToken = tt.validator
			}
			if tt.status == http.StatusNoContent {
				notifications.On("Broadcast", mock.Anything, mock.Anything).Return(&usecase.BroadcastResult{}, nil).Once()
			}

			rec := servePush(h, pushBody(t, encodeEvent(t, service.RestaurantCreatedEvent{RestaurantID: "x"}), nil), tt.header)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
