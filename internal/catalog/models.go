package catalog

import (
	id "codedrip/pkg/domain"
)

// Size is a fixed apparel size. The set matches the storefront size guide.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

var sizes = map[Size]struct{}{
	SizeXS: {}, SizeS: {}, SizeM: {}, SizeL: {}, SizeXL: {}, SizeXXL: {},
}

// Valid reports whether s belongs to the fixed size enumeration.
func (s Size) Valid() bool {
	_, ok := sizes[s]
	return ok
}

// Color is a fixed palette entry.
type Color string

const (
	ColorBlack    Color = "black"
	ColorWhite    Color = "white"
	ColorNavy     Color = "navy"
	ColorCharcoal Color = "charcoal"
	ColorForest   Color = "forest"
	ColorBurgundy Color = "burgundy"
	ColorSlate    Color = "slate"
)

var colors = map[Color]struct{}{
	ColorBlack: {}, ColorWhite: {}, ColorNavy: {}, ColorCharcoal: {},
	ColorForest: {}, ColorBurgundy: {}, ColorSlate: {},
}

func (c Color) Valid() bool {
	_, ok := colors[c]
	return ok
}

// Category groups products by audience.
type Category string

const (
	CategoryDeveloper   Category = "developer"
	CategoryMedical     Category = "medical"
	CategoryEngineering Category = "engineering"
	CategoryDesigner    Category = "designer"
)

var categories = map[Category]struct{}{
	CategoryDeveloper: {}, CategoryMedical: {}, CategoryEngineering: {}, CategoryDesigner: {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// ProductType is the garment cut.
type ProductType string

const (
	TypeTShirt     ProductType = "t-shirt"
	TypeHoodie     ProductType = "hoodie"
	TypeSweatshirt ProductType = "sweatshirt"
	TypeLongSleeve ProductType = "long-sleeve"
	TypeJacket     ProductType = "jacket"
)

var productTypes = map[ProductType]struct{}{
	TypeTShirt: {}, TypeHoodie: {}, TypeSweatshirt: {}, TypeLongSleeve: {}, TypeJacket: {},
}

func (t ProductType) Valid() bool {
	_, ok := productTypes[t]
	return ok
}

// Product is a catalog entry. The cart never mutates products; it only looks
// up prices by ID.
type Product struct {
	ID            id.ProductID `json:"id"`
	Name          string       `json:"name"`
	Tagline       string       `json:"tagline"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	OriginalPrice float64      `json:"originalPrice,omitempty"`
	Category      Category     `json:"category"`
	Type          ProductType  `json:"type"`
	Colors        []Color      `json:"colors"`
	Sizes         []Size       `json:"sizes"`
	Images        []string     `json:"images"`
	Featured      bool         `json:"featured"`
	New           bool         `json:"new"`
	InStock       bool         `json:"inStock"`
}

// PriceLookup resolves a product price by ID. The second return is false when
// the product is unknown; callers treat that as a zero price contribution.
type PriceLookup func(id.ProductID) (float64, bool)

// LookupFrom builds a PriceLookup over a catalog snapshot.
func LookupFrom(products []Product) PriceLookup {
	byID := make(map[id.ProductID]float64, len(products))
	for _, p := range products {
		byID[p.ID] = p.Price
	}
	return func(productID id.ProductID) (float64, bool) {
		price, ok := byID[productID]
		return price, ok
	}
}
