package ports

import "context"

// EventPublisher publishes audit events to notify other systems
type EventPublisher interface {
	PublishLogin(ctx context.Context, userID, username string) error
}
