// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"

	"food/config"
	"food/internal/domain/service"
	"food/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxBatchSize is the FCM limit of messages per SendEach call.
const maxBatchSize = 500

// messagingClient is the subset of *messaging.Client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a Firebase push service from a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, message service.PushMessage) error {
	if message.Token == "" {
		return errors.New("push token is empty")
	}

	if _, err := s.client.Send(ctx, toFCMMessage(message)); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends messages in chunks of at most 500.
func (s *firebaseService) SendBatchNotification(ctx context.Context, messages []service.PushMessage) (*service.PushBatchResult, error) {
	result := &service.PushBatchResult{
		Delivered:     make([]bool, len(messages)),
		InvalidTokens: make([]string, 0),
	}

	for start := 0; start < len(messages); start += maxBatchSize {
		end := min(start+maxBatchSize, len(messages))

		chunk := make([]*messaging.Message, 0, end-start)
		for _, message := range messages[start:end] {
			chunk = append(chunk, toFCMMessage(message))
		}

		response, err := s.client.SendEach(ctx, chunk)
		if err != nil {
			return nil, errors.Wrap(err, "failed to send batch notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Success {
				result.Delivered[start+idx] = true

				continue
			}
			if sendResponse.Error != nil &&
				(messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error)) {
				result.InvalidTokens = append(result.InvalidTokens, messages[start+idx].Token)
			}
		}
	}

	return result, nil
}

func toFCMMessage(message service.PushMessage) *messaging.Message {
	return &messaging.Message{
		Token: message.Token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
	}
}
