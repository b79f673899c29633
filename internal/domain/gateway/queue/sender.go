package queue

import "context"

// Sender publishes a JSON encoded body to a named queue and returns the broker message id.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error)
}
