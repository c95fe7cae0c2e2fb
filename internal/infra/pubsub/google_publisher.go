package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googleTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// newGoogleTransport fails fast when the topic does not exist.
func newGoogleTransport(ctx context.Context, projectID, topicID string) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topic)
	}

	return &googleTransport{client: client, publisher: client.Publisher(topicID)}, nil
}

// send blocks until the server acknowledges the message.
func (t *googleTransport) send(ctx context.Context, msg message) (string, error) {
	id, err := t.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	}).Get(ctx)

	return id, errors.WithStack(err)
}

func (t *googleTransport) close() error {
	t.publisher.Stop()

	return errors.WithStack(t.client.Close())
}
