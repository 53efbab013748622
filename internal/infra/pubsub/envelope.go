package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"drivesafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute keys set on every published alert.
const (
	AttrRequestID = "request_id"
	AttrKind      = "kind"
	AttrUserID    = "user_id"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeAlertEvent returns the message payload and attributes for an alert event.
func encodeAlertEvent(event *service.AlertEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("nil alert event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrKind:   event.Kind,
		AttrUserID: event.UserID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// NewPushEnvelope wraps an alert event the way Pub/Sub push delivery does.
func NewPushEnvelope(event *service.AlertEvent, subscription string) (*PushEnvelope, error) {
	data, attributes, err := encodeAlertEvent(event)
	if err != nil {
		return nil, err
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope, nil
}

// AlertEvent decodes the alert event carried by the envelope.
func (e *PushEnvelope) AlertEvent() (*service.AlertEvent, error) {
	if e.Message.Data == "" {
		return nil, errors.New("empty message data")
	}

	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse alert event")
	}

	return &event, nil
}
