package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/requestcontext"
)

// Filter narrows a product listing. Zero value lists everything.
type Filter struct {
	Category string
	Featured bool
	New      bool
}

// Service answers catalog queries and accepts admin product uploads.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns products matching the filter. Featured and New take precedence
// over Category, matching the storefront query parameters. Category "all" is
// equivalent to no category filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Product, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch products")
	}

	switch {
	case filter.Featured:
		return selectProducts(all, func(p Product) bool { return p.Featured }), nil
	case filter.New:
		return selectProducts(all, func(p Product) bool { return p.New }), nil
	case filter.Category != "" && filter.Category != "all":
		category := Category(filter.Category)
		return selectProducts(all, func(p Product) bool { return p.Category == category }), nil
	default:
		return all, nil
	}
}

// GetByID returns one product or a not-found error.
func (s *Service) GetByID(ctx context.Context, productID id.ProductID) (Product, error) {
	return s.store.FindByID(ctx, productID)
}

// PriceLookup builds a price resolver over the current catalog snapshot.
func (s *Service) PriceLookup(ctx context.Context) (PriceLookup, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch products")
	}
	return LookupFrom(all), nil
}

// UploadInput is an admin product submission before normalization.
type UploadInput struct {
	ID            string
	Name          string
	Tagline       string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      string
	Type          string
	Colors        []string
	Sizes         []string
	Images        []string
	Featured      bool
	New           *bool
	InStock       *bool
}

// CreateProduct validates and stores an admin upload. Missing IDs get a
// generated slug; New and InStock default to true when unset.
func (s *Service) CreateProduct(ctx context.Context, input UploadInput) (Product, error) {
	issues := validateUpload(input)
	if len(issues) > 0 {
		return Product{}, dErrors.Validation("invalid product data", issues)
	}

	productID := id.ProductID(strings.TrimSpace(input.ID))
	if productID == "" {
		productID = id.ProductID(fmt.Sprintf("product-%d", requestcontext.Now(ctx).UnixMilli()))
	}

	product := Product{
		ID:            productID,
		Name:          input.Name,
		Tagline:       input.Tagline,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      Category(input.Category),
		Type:          ProductType(input.Type),
		Colors:        toColors(input.Colors),
		Sizes:         toSizes(input.Sizes),
		Images:        input.Images,
		Featured:      input.Featured,
		New:           boolOr(input.New, true),
		InStock:       boolOr(input.InStock, true),
	}

	if err := s.store.Create(ctx, product); err != nil {
		return Product{}, err
	}
	s.logger.Info("product created", "product_id", product.ID, "category", product.Category)
	return product, nil
}

func validateUpload(input UploadInput) []dErrors.Issue {
	var issues []dErrors.Issue
	if strings.TrimSpace(input.Name) == "" {
		issues = append(issues, dErrors.Issue{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		issues = append(issues, dErrors.Issue{Field: "description", Message: "description is required"})
	}
	if input.Price <= 0 {
		issues = append(issues, dErrors.Issue{Field: "price", Message: "price must be positive"})
	}
	if !Category(input.Category).Valid() {
		issues = append(issues, dErrors.Issue{Field: "category", Message: "unknown category"})
	}
	if !ProductType(input.Type).Valid() {
		issues = append(issues, dErrors.Issue{Field: "type", Message: "unknown product type"})
	}
	if len(input.Colors) == 0 {
		issues = append(issues, dErrors.Issue{Field: "colors", Message: "at least one color is required"})
	}
	for _, c := range input.Colors {
		if !Color(strings.ToLower(strings.TrimSpace(c))).Valid() {
			issues = append(issues, dErrors.Issue{Field: "colors", Message: fmt.Sprintf("unknown color %q", c)})
		}
	}
	if len(input.Sizes) == 0 {
		issues = append(issues, dErrors.Issue{Field: "sizes", Message: "at least one size is required"})
	}
	for _, sz := range input.Sizes {
		if !Size(strings.ToUpper(strings.TrimSpace(sz))).Valid() {
			issues = append(issues, dErrors.Issue{Field: "sizes", Message: fmt.Sprintf("unknown size %q", sz)})
		}
	}
	return issues
}

func toColors(values []string) []Color {
	out := make([]Color, 0, len(values))
	seen := make(map[Color]struct{}, len(values))
	for _, v := range values {
		c := Color(strings.ToLower(strings.TrimSpace(v)))
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func toSizes(values []string) []Size {
	out := make([]Size, 0, len(values))
	seen := make(map[Size]struct{}, len(values))
	for _, v := range values {
		sz := Size(strings.ToUpper(strings.TrimSpace(v)))
		if _, ok := seen[sz]; ok {
			continue
		}
		seen[sz] = struct{}{}
		out = append(out, sz)
	}
	return out
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func selectProducts(all []Product, keep func(Product) bool) []Product {
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
