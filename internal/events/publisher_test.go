package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	id  string
	err error
}

func (r fakeResult) Get(context.Context) (string, error) { return r.id, r.err }

type fakeTopic struct {
	msgs   []*gcppubsub.Message
	result publishResult
}

func (f *fakeTopic) Publish(_ context.Context, msg *gcppubsub.Message) publishResult {
	f.msgs = append(f.msgs, msg)
	return f.result
}

func TestPublishItemCreated(t *testing.T) {
	topic := &fakeTopic{result: fakeResult{id: "srv-1"}}
	pub := newPublisher(topic, logger.Nop())
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return fixed }

	item := types.Item{ID: 42, Product: "Cat Tree", Price: 89.99, MinDiscount: 10, MaxDiscount: 25, Coupon: "TREE25", Duration: 7}
	require.NoError(t, pub.PublishItemCreated(context.Background(), item))
	require.Len(t, topic.msgs, 1)

	msg := topic.msgs[0]
	assert.Equal(t, EventTypeItemCreated, msg.Attributes["event_type"])
	assert.Equal(t, "42", msg.Attributes["item_id"])
	assert.NotEmpty(t, msg.Attributes["event_id"])

	var envelope Envelope
	require.NoError(t, json.Unmarshal(msg.Data, &envelope))
	assert.Equal(t, 1, envelope.Version)
	assert.Equal(t, msg.Attributes["event_id"], envelope.EventID)
	assert.True(t, envelope.OccurredAt.Equal(fixed))

	var decoded types.Item
	require.NoError(t, json.Unmarshal(envelope.Data, &decoded))
	assert.Equal(t, item, decoded)
}

func TestPublishItemCreatedErrors(t *testing.T) {
	failing := newPublisher(&fakeTopic{result: fakeResult{err: errors.New("unavailable")}}, nil)
	err := failing.PublishItemCreated(context.Background(), types.Item{ID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")

	nilResult := newPublisher(&fakeTopic{}, nil)
	assert.Error(t, nilResult.PublishItemCreated(context.Background(), types.Item{ID: 1}))
}

func TestNoopAndConstructor(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishItemCreated(context.Background(), types.Item{}))

	_, err := NewPubSubPublisher(nil, nil)
	assert.Error(t, err)
}
