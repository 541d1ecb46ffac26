package cart

import (
	"context"

	id "codedrip/pkg/domain"
)

// LocalStore is the device-scoped durable mirror used while anonymous. It
// holds exactly one item list per device.
type LocalStore interface {
	// Load returns the persisted items, or an empty list when nothing was
	// persisted or the payload is corrupt. It never fails on bad payloads.
	Load(ctx context.Context) ([]LineItem, error)
	// Save overwrites the persisted list with a full snapshot.
	Save(ctx context.Context, items []LineItem) error
}

// RemoteStore is the per-user durable mirror used while authenticated.
type RemoteStore interface {
	// Fetch returns the user's items; an absent cart is an empty list, not
	// an error.
	Fetch(ctx context.Context, userID id.UserID) ([]LineItem, error)
	// Save overwrites the user's cart with a full snapshot. Last writer wins.
	Save(ctx context.Context, userID id.UserID, items []LineItem) error
}

// ResourceStore persists the server-side anonymous cart resources addressed
// by cart ID.
type ResourceStore interface {
	Create(ctx context.Context) (Cart, error)
	Get(ctx context.Context, cartID id.CartID) (Cart, error)
	Save(ctx context.Context, cart Cart) error
}
