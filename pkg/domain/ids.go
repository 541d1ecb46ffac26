// Package domain holds typed identifiers shared across the service.
//
// IDs are distinct string types so the compiler catches a cart ID passed
// where an order ID was expected. Product and order IDs are not UUIDs:
// products use catalog slugs ("committed-hoodie") and orders use the
// CD-prefixed format generated at checkout.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	// ProductID is a catalog slug, e.g. "committed-hoodie".
	ProductID string

	// CartID identifies a server-side anonymous cart. Always a UUID.
	CartID string

	// OrderID is the confirmation identifier, e.g. "CD-LXK2M9PQ".
	OrderID string

	// UserID is the opaque identifier of an authenticated user.
	UserID string

	// SubscriberID identifies a newsletter subscriber. Always a UUID.
	SubscriberID string
)

// NewCartID generates a fresh cart identifier.
func NewCartID() CartID {
	return CartID(uuid.NewString())
}

// ParseCartID validates that s is a well-formed cart identifier.
func ParseCartID(s string) (CartID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid cart id %q: %w", s, err)
	}
	return CartID(s), nil
}

// NewSubscriberID generates a fresh subscriber identifier.
func NewSubscriberID() SubscriberID {
	return SubscriberID(uuid.NewString())
}

func (p ProductID) String() string    { return string(p) }
func (c CartID) String() string       { return string(c) }
func (o OrderID) String() string      { return string(o) }
func (u UserID) String() string       { return string(u) }
func (s SubscriberID) String() string { return string(s) }

// IsZero reports whether the user ID is unset, i.e. the request is anonymous.
func (u UserID) IsZero() bool { return u == "" }
