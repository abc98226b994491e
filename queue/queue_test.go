package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://sqs.us-east-1.amazonaws.com/123456789012/orders"

func TestQueueByName(t *testing.T) {
	t.Run("resolves url", func(t *testing.T) {
		mock := &MockClient{
			GetQueueUrlFunc: func(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
				assert.Equal(t, "orders", aws.ToString(params.QueueName))
				return &sqs.GetQueueUrlOutput{QueueUrl: aws.String(testURL)}, nil
			},
		}

		q, err := NewResource(mock).QueueByName(context.Background(), "orders")
		require.NoError(t, err)
		assert.Equal(t, testURL, q.URL())
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		mock := &MockClient{
			GetQueueUrlFunc: func(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
				return nil, errors.New("no such queue")
			},
		}

		_, err := NewResource(mock).QueueByName(context.Background(), "ghost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `queue: resolve url for "ghost"`)
	})
}

func TestQueueSend(t *testing.T) {
	mock := &MockClient{
		SendMessageFunc: func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			assert.Equal(t, testURL, aws.ToString(params.QueueUrl))
			assert.Equal(t, `{"order":42}`, aws.ToString(params.MessageBody))
			return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
		},
	}

	id, err := NewResource(mock).Queue(testURL).Send(context.Background(), `{"order":42}`)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
}

func TestQueueReceive(t *testing.T) {
	mock := &MockClient{
		ReceiveMessageFunc: func(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			assert.Equal(t, int32(5), params.MaxNumberOfMessages)
			assert.Equal(t, int32(10), params.WaitTimeSeconds)
			return &sqs.ReceiveMessageOutput{
				Messages: []types.Message{
					{MessageId: aws.String("m1"), Body: aws.String("a"), ReceiptHandle: aws.String("rh1")},
					{MessageId: aws.String("m2"), Body: aws.String("b"), ReceiptHandle: aws.String("rh2")},
				},
			}, nil
		},
	}

	msgs, err := NewResource(mock).Queue(testURL).Receive(context.Background(), 5, 10*time.Second)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, Message{ID: "m1", Body: "a", ReceiptHandle: "rh1"}, msgs[0])
	assert.Equal(t, Message{ID: "m2", Body: "b", ReceiptHandle: "rh2"}, msgs[1])
}

func TestQueueDelete(t *testing.T) {
	var handle string
	mock := &MockClient{
		DeleteMessageFunc: func(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
			handle = aws.ToString(params.ReceiptHandle)
			return &sqs.DeleteMessageOutput{}, nil
		},
	}

	err := NewResource(mock).Queue(testURL).Delete(context.Background(), Message{ReceiptHandle: "rh1"})
	require.NoError(t, err)
	assert.Equal(t, "rh1", handle)
}
