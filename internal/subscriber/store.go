package subscriber

import "context"

// Store persists subscribers. Save returns a conflict error when the email
// is already on the list.
type Store interface {
	Save(ctx context.Context, sub Subscriber) error
	List(ctx context.Context) ([]Subscriber, error)
}
