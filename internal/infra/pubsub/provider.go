// Package pubsub publishes domain events for the event worker.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"food/config"
	"food/internal/domain/constants"
	"food/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const providerNone = "none"

// message is the provider-neutral form of a published event.
type message struct {
	data       []byte
	attributes map[string]string
}

// transport moves one encoded message to the broker and returns its id.
type transport interface {
	send(ctx context.Context, msg message) (string, error)
	close() error
}

// publisher encodes domain events and hands them to a transport.
type publisher struct {
	transport transport
	provider  string
	logger    *slog.Logger
}

func (p *publisher) PublishRestaurantCreated(ctx context.Context, event *service.RestaurantCreatedEvent) error {
	msg, err := restaurantCreatedMessage(event)
	if err != nil {
		return err
	}

	id, err := p.transport.send(ctx, msg)
	if err != nil {
		return errors.Wrapf(err, "publish %s via %s", constants.EventTypeRestaurantCreated, p.provider)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("provider", p.provider),
		slog.String("event_type", constants.EventTypeRestaurantCreated),
		slog.String("restaurant_id", event.RestaurantID),
		slog.String("message_id", id),
	)

	return nil
}

func (p *publisher) Close() error {
	return p.transport.close()
}

func restaurantCreatedMessage(event *service.RestaurantCreatedEvent) (message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return message{}, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type":    constants.EventTypeRestaurantCreated,
		"restaurant_id": event.RestaurantID,
		"owner_id":      event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return message{data: data, attributes: attributes}, nil
}

// discard drops every message; used when publishing is disabled.
type discard struct{}

func (discard) send(context.Context, message) (string, error) { return "", nil }
func (discard) close() error                                   { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. An empty
// provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, events are discarded")

		return &publisher{transport: discard{}, provider: providerNone, logger: logger}, nil
	}

	var t transport
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing events to the local worker", slog.String("endpoint", cfg.LocalEndpoint))
		t = newHTTPTransport(cfg.LocalEndpoint)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		if t, err = newGoogleTransport(params.Ctx, cfg.ProjectID, cfg.TopicID); err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	p := &publisher{transport: t, provider: cfg.Provider, logger: logger}
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher", slog.String("provider", p.provider))

			return p.Close()
		},
	})

	return p, nil
}
