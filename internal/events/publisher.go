// Package events publishes item lifecycle events to Pub/Sub.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

const defaultPublishTimeout = 10 * time.Second

// Publisher emits item events.
type Publisher interface {
	PublishItemCreated(ctx context.Context, item types.Item) error
}

// NoopPublisher drops every event. Used when Pub/Sub is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishItemCreated(context.Context, types.Item) error { return nil }

type publishResult interface {
	Get(ctx context.Context) (string, error)
}

type topicPublisher interface {
	Publish(ctx context.Context, msg *gcppubsub.Message) publishResult
}

// PubSubPublisher publishes envelopes to a single topic and waits for the server ack.
type PubSubPublisher struct {
	pub     topicPublisher
	logg    *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewPubSubPublisher wraps a Pub/Sub v2 publisher handle.
func NewPubSubPublisher(pub *gcppubsub.Publisher, logg *logger.Logger) (*PubSubPublisher, error) {
	if pub == nil {
		return nil, errors.New("pubsub publisher required")
	}
	return newPublisher(&gcpPublisher{Publisher: pub}, logg), nil
}

func newPublisher(pub topicPublisher, logg *logger.Logger) *PubSubPublisher {
	if logg == nil {
		logg = logger.Nop()
	}
	return &PubSubPublisher{pub: pub, logg: logg, timeout: defaultPublishTimeout, now: time.Now}
}

func (p *PubSubPublisher) PublishItemCreated(ctx context.Context, item types.Item) error {
	envelope, err := newItemEnvelope(EventTypeItemCreated, item, p.now())
	if err != nil {
		return fmt.Errorf("encode item event: %w", err)
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	msg := &gcppubsub.Message{
		Data: body,
		Attributes: map[string]string{
			"event_id":    envelope.EventID,
			"event_type":  envelope.EventType,
			"item_id":     strconv.FormatInt(item.ID, 10),
			"occurred_at": envelope.OccurredAt.Format(time.RFC3339Nano),
		},
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	result := p.pub.Publish(publishCtx, msg)
	if result == nil {
		return errors.New("publisher returned nil result")
	}
	serverID, err := result.Get(publishCtx)
	if err != nil {
		return fmt.Errorf("publish %s: %w", envelope.EventType, err)
	}

	p.logg.Debug(p.logg.WithFields(ctx, map[string]any{
		"event_id":   envelope.EventID,
		"event_type": envelope.EventType,
		"message_id": serverID,
	}), "item event published")
	return nil
}

type gcpPublisher struct {
	*gcppubsub.Publisher
}

func (p *gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	if p == nil || p.Publisher == nil {
		return nil
	}
	return p.Publisher.Publish(ctx, msg)
}
