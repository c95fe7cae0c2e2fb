package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"food/config"
	"food/internal/domain/constants"
	"food/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventPublisher_DisabledDiscardsEvents(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishRestaurantCreated(context.Background(), &service.RestaurantCreatedEvent{RestaurantID: "r-1"}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: &tt.cfg},
				Logger: slog.New(slog.DiscardHandler),
			})

			assert.Error(t, err)
		})
	}
}

func TestRestaurantCreatedMessage_Attributes(t *testing.T) {
	msg, err := restaurantCreatedMessage(&service.RestaurantCreatedEvent{RestaurantID: "r-1", OwnerID: "o-1"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"event_type":    constants.EventTypeRestaurantCreated,
		"restaurant_id": "r-1",
		"owner_id":      "o-1",
	}, msg.attributes)
	assert.JSONEq(t, `{"restaurant_id":"r-1","owner_id":"o-1","name":""}`, string(msg.data))
}
