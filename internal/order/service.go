package order

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"codedrip/internal/cart"
	ordermetrics "codedrip/internal/order/metrics"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/requestcontext"
)

// CreateInput is a checkout submission after JSON decoding, before
// validation.
type CreateInput struct {
	Items        []cart.LineItem
	CustomerInfo CustomerInfo
	Subtotal     float64
	Shipping     float64
	Tax          float64
	Total        float64
}

// Service validates checkout submissions and records orders. The primary
// store always holds the returned record; the archive store is written
// best-effort, and a failed archive write never fails the checkout.
type Service struct {
	store   Store
	archive Store
	logger  *slog.Logger
	metrics *ordermetrics.Metrics
}

// Option configures the service.
type Option func(*Service)

// WithArchive attaches a durable archive store, written best-effort.
func WithArchive(archive Store) Option {
	return func(s *Service) { s.archive = archive }
}

// WithMetrics attaches order metrics.
func WithMetrics(m *ordermetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates the submission, assigns an identifier, and persists
// the record. Validation failures are reported before any persistence
// attempt. The returned order is authoritative even when the durable write
// failed; the caller is responsible for clearing the cart afterwards.
func (s *Service) CreateOrder(ctx context.Context, input CreateInput) (Order, error) {
	if issues := input.CustomerInfo.Validate(); len(issues) > 0 {
		return Order{}, dErrors.Validation("invalid customer information", issues)
	}
	if len(input.Items) == 0 {
		return Order{}, dErrors.New(dErrors.CodeBadRequest, "order must have at least one item")
	}

	now := requestcontext.Now(ctx).UTC()
	o := Order{
		ID:           newOrderID(now.UnixMilli()),
		Items:        input.Items,
		CustomerInfo: input.CustomerInfo,
		Subtotal:     input.Subtotal,
		Shipping:     input.Shipping,
		Tax:          input.Tax,
		Total:        input.Total,
		Status:       StatusConfirmed,
		CreatedAt:    now,
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, o); err != nil {
			s.logger.Error("order archive write failed", "order_id", o.ID, "error", err)
			s.metrics.IncArchiveFailure()
		}
	}
	if err := s.store.Save(ctx, o); err != nil {
		// The record is still returned; the confirmation must not block on
		// persistence.
		s.logger.Error("order store write failed", "order_id", o.ID, "error", err)
	}

	s.metrics.IncOrdersCreated()
	s.logger.Info("order confirmed", "order_id", o.ID, "items", len(o.Items), "total", o.Total)
	return o, nil
}

// GetOrder looks up an order by ID, falling back to the archive for records
// created by an earlier process.
func (s *Service) GetOrder(ctx context.Context, orderID id.OrderID) (Order, error) {
	o, err := s.store.FindByID(ctx, orderID)
	if err == nil {
		return o, nil
	}
	if s.archive != nil && dErrors.HasCode(err, dErrors.CodeNotFound) {
		return s.archive.FindByID(ctx, orderID)
	}
	return Order{}, err
}

// newOrderID derives the confirmation identifier from the creation time,
// e.g. CD-LXK2M9PQ.
func newOrderID(unixMilli int64) id.OrderID {
	return id.OrderID("CD-" + strings.ToUpper(strconv.FormatInt(unixMilli, 36)))
}
