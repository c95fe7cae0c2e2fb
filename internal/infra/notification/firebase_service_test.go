package notification

import (
	"context"
	"testing"

	"food/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMessagingClient struct {
	mock.Mock
}

func (m *mockMessagingClient) Send(ctx context.Context, message *messaging.Message) (string, error) {
	args := m.Called(ctx, message)

	return args.String(0), args.Error(1)
}

func (m *mockMessagingClient) SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error) {
	args := m.Called(ctx, messages)
	if resp := args.Get(0); resp != nil {
		return resp.(*messaging.BatchResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &mockMessagingClient{}
	svc := &firebaseService{client: client}
	ctx := context.Background()

	client.On("Send", ctx, mock.MatchedBy(func(m *messaging.Message) bool {
		return m.Token == "tok" && m.Notification.Title == "Hi" && m.Data["type"] == "SYSTEM"
	})).Return("msg-1", nil).Once()

	err := svc.SendSingleNotification(ctx, service.PushMessage{
		Token: "tok",
		Title: "Hi",
		Body:  "body",
		Data:  map[string]string{"type": "SYSTEM"},
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestFirebaseService_SendSingleNotification_Errors(t *testing.T) {
	client := &mockMessagingClient{}
	svc := &firebaseService{client: client}
	ctx := context.Background()

	assert.Error(t, svc.SendSingleNotification(ctx, service.PushMessage{Title: "no token"}))

	client.On("Send", ctx, mock.Anything).Return("", errors.New("unavailable")).Once()
	assert.Error(t, svc.SendSingleNotification(ctx, service.PushMessage{Token: "tok"}))
}

func TestFirebaseService_SendBatchNotification_ChunksAndReportsDelivery(t *testing.T) {
	client := &mockMessagingClient{}
	svc := &firebaseService{client: client}
	ctx := context.Background()

	messages := make([]service.PushMessage, maxBatchSize+2)
	for i := range messages {
		messages[i] = service.PushMessage{Token: "tok", Title: "t", Body: "b"}
	}

	full := &messaging.BatchResponse{SuccessCount: maxBatchSize, Responses: make([]*messaging.SendResponse, maxBatchSize)}
	for i := range full.Responses {
		full.Responses[i] = &messaging.SendResponse{Success: true}
	}
	tail := &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true},
			{Success: false, Error: errors.New("transient")},
		},
	}

	client.On("SendEach", ctx, mock.MatchedBy(func(m []*messaging.Message) bool { return len(m) == maxBatchSize })).Return(full, nil).Once()
	client.On("SendEach", ctx, mock.MatchedBy(func(m []*messaging.Message) bool { return len(m) == 2 })).Return(tail, nil).Once()

	result, err := svc.SendBatchNotification(ctx, messages)

	require.NoError(t, err)
	assert.Equal(t, maxBatchSize+1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.True(t, result.Delivered[maxBatchSize])
	assert.False(t, result.Delivered[maxBatchSize+1])
	assert.Empty(t, result.InvalidTokens)
	client.AssertExpectations(t)
}

func TestFirebaseService_SendBatchNotification_Empty(t *testing.T) {
	svc := &firebaseService{client: &mockMessagingClient{}}

	result, err := svc.SendBatchNotification(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, result.Delivered)
}
