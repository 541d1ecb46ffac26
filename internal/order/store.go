package order

import (
	"context"

	id "codedrip/pkg/domain"
)

// Store persists order records. The in-memory store is authoritative for
// reads within a process; the postgres store is the durable archive written
// best-effort at creation time.
type Store interface {
	Save(ctx context.Context, o Order) error
	FindByID(ctx context.Context, orderID id.OrderID) (Order, error)
}
