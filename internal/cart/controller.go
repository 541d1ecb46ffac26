package cart

import (
	"context"
	"log/slog"
	"sync"

	cartmetrics "codedrip/internal/cart/metrics"
	"codedrip/internal/catalog"
	id "codedrip/pkg/domain"
)

// Controller owns the in-memory item list for one session and keeps exactly
// one durable mirror authoritative at a time: the local store while
// anonymous, the remote store keyed by user ID once authenticated.
//
// Every mutation persists a full snapshot of the current list to the
// authoritative mirror. Persistence is best effort: a failed write is logged
// and counted, never surfaced to the caller, and never corrupts the
// in-memory list.
type Controller struct {
	mu       sync.Mutex
	items    []LineItem
	userID   id.UserID
	visible  bool
	local    LocalStore
	remote   RemoteStore
	logger   *slog.Logger
	metrics  *cartmetrics.Metrics
	onChange []func([]LineItem)
}

// Option configures a Controller.
type Option func(*Controller)

// WithMetrics attaches cart metrics to the controller.
func WithMetrics(m *cartmetrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// NewController builds a controller in the anonymous state, seeded from the
// local mirror. A corrupt or absent local payload yields an empty cart.
func NewController(ctx context.Context, local LocalStore, remote RemoteStore, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		local:  local,
		remote: remote,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	items, err := local.Load(ctx)
	if err != nil {
		logger.Warn("local cart load failed, starting empty", "error", err)
		items = []LineItem{}
	}
	c.items = items
	return c
}

// SetIdentity re-evaluates which mirror is authoritative after a login or
// logout.
//
// On login the remote cart wins when it has items: the in-memory (local)
// list is replaced, not merged. An empty or unreadable remote cart keeps the
// current in-memory list as the fallback. On logout the controller reloads
// the local mirror.
func (c *Controller) SetIdentity(ctx context.Context, userID id.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.userID = userID

	if userID.IsZero() {
		items, err := c.local.Load(ctx)
		if err != nil {
			c.logger.Warn("local cart load failed on logout, starting empty", "error", err)
			items = []LineItem{}
		}
		c.items = items
		c.metrics.IncMigration("logout")
		c.notifyLocked()
		return
	}

	remoteItems, err := c.remote.Fetch(ctx, userID)
	if err != nil {
		c.logger.Error("remote cart fetch failed, keeping current items", "user_id", userID, "error", err)
		c.metrics.IncPersistFailure("remote")
		return
	}
	if len(remoteItems) > 0 {
		c.items = remoteItems
		c.metrics.IncMigration("remote_wins")
	} else {
		c.metrics.IncMigration("local_kept")
	}
	c.notifyLocked()
}

// AddItem merges the item into the cart and opens the cart panel. The
// quantity must already be validated as positive at the boundary.
func (c *Controller) AddItem(ctx context.Context, productID id.ProductID, size catalog.Size, color catalog.Color, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = AddItem(c.items, LineItem{ProductID: productID, Size: size, Color: color, Quantity: quantity})
	c.visible = true
	c.metrics.IncMutation("add")
	c.persistLocked(ctx)
	c.notifyLocked()
}

// RemoveItem drops the entry matching the key, if any.
func (c *Controller) RemoveItem(ctx context.Context, key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = RemoveItem(c.items, key)
	c.metrics.IncMutation("remove")
	c.persistLocked(ctx)
	c.notifyLocked()
}

// UpdateQuantity sets the quantity for the entry matching the key. A
// quantity below 1 removes the entry.
func (c *Controller) UpdateQuantity(ctx context.Context, key Key, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = UpdateQuantity(c.items, key, quantity)
	c.metrics.IncMutation("update")
	c.persistLocked(ctx)
	c.notifyLocked()
}

// Clear empties the cart unconditionally.
func (c *Controller) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []LineItem{}
	c.metrics.IncMutation("clear")
	c.persistLocked(ctx)
	c.notifyLocked()
}

// Items returns a snapshot of the current list.
func (c *Controller) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of quantities across the cart.
func (c *Controller) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ItemCount(c.items)
}

// Subtotal prices the current cart against a catalog snapshot.
func (c *Controller) Subtotal(lookup catalog.PriceLookup) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Subtotal(c.items, lookup)
}

// Visible reports whether the cart panel is open. Adding an item always
// opens it.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// OpenCart makes the cart panel visible.
func (c *Controller) OpenCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
}

// CloseCart hides the cart panel.
func (c *Controller) CloseCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
}

// OnChange registers a callback invoked with a snapshot after every change
// to the item list. Callbacks run synchronously on the mutating goroutine.
func (c *Controller) OnChange(fn func([]LineItem)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// persistLocked writes the full current list to the authoritative mirror.
// Callers hold c.mu.
func (c *Controller) persistLocked(ctx context.Context) {
	if c.userID.IsZero() {
		if err := c.local.Save(ctx, c.items); err != nil {
			c.logger.Error("local cart save failed", "error", err)
			c.metrics.IncPersistFailure("local")
		}
		return
	}
	if err := c.remote.Save(ctx, c.userID, c.items); err != nil {
		c.logger.Error("remote cart save failed", "user_id", c.userID, "error", err)
		c.metrics.IncPersistFailure("remote")
	}
}

func (c *Controller) notifyLocked() {
	snapshot := make([]LineItem, len(c.items))
	copy(snapshot, c.items)
	for _, fn := range c.onChange {
		fn(snapshot)
	}
}
