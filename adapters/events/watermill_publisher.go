package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/gatehouse/gatehouse/ports"
)

// LoginTopic is the topic login audit events are published to
const LoginTopic = "auth.login"

// LoginEvent represents a successful login
type LoginEvent struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	LoggedAt time.Time `json:"logged_at"`
}

// WatermillPublisher implements the EventPublisher port using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{
		publisher: publisher,
		topic:     LoginTopic,
	}
}

// PublishLogin publishes a login audit event
func (p *WatermillPublisher) PublishLogin(ctx context.Context, userID, username string) error {
	event := LoginEvent{
		UserID:   userID,
		Username: username,
		LoggedAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
