package events

import (
	"encoding/json"
	"time"

	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/google/uuid"
)

const (
	envelopeVersion = 1

	EventTypeItemCreated = "item.created"
)

// Envelope is the stable message body published for item events.
type Envelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

func newItemEnvelope(eventType string, item types.Item, now time.Time) (Envelope, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Version:    envelopeVersion,
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: now.UTC(),
		Data:       data,
	}, nil
}
