package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"food/internal/domain/constants"
	"food/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/restaurant-events"

// PushEnvelope is the body Pub/Sub sends to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// httpTransport posts messages straight to the worker in the push format,
// standing in for Google Pub/Sub during development.
type httpTransport struct {
	endpoint string
	client   *http.Client
}

func newHTTPTransport(endpoint string) *httpTransport {
	return &httpTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewLocalHTTPPublisher publishes to a worker listening at endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &publisher{
		transport: newHTTPTransport(endpoint),
		provider:  constants.PubSubProviderLocal,
		logger:    logger,
	}
}

func (t *httpTransport) send(ctx context.Context, msg message) (string, error) {
	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.attributes["request_id"]; requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Errorf("worker returned status %d", resp.StatusCode)
	}

	return envelope.Message.MessageID, nil
}

func (t *httpTransport) close() error {
	t.client.CloseIdleConnections()

	return nil
}
