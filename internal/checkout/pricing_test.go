package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codedrip/internal/cart"
	"codedrip/internal/catalog"
)

var testLookup = catalog.LookupFrom([]catalog.Product{
	{ID: "committed-hoodie", Price: 89.99},
	{ID: "404-not-found-tee", Price: 49.99},
})

func TestComputeTotals(t *testing.T) {
	t.Run("empty cart still pays flat shipping", func(t *testing.T) {
		totals := ComputeTotals(nil, testLookup)

		assert.Zero(t, totals.Subtotal)
		assert.InDelta(t, 9.99, totals.Shipping, 0.0001)
		assert.Zero(t, totals.Tax)
		assert.InDelta(t, 9.99, totals.Total, 0.0001)
	})

	t.Run("subtotal at the threshold still pays shipping", func(t *testing.T) {
		lookup := catalog.LookupFrom([]catalog.Product{{ID: "p", Price: 100.00}})
		items := []cart.LineItem{{ProductID: "p", Size: catalog.SizeM, Color: catalog.ColorBlack, Quantity: 1}}

		totals := ComputeTotals(items, lookup)

		assert.InDelta(t, 9.99, totals.Shipping, 0.0001)
	})

	t.Run("subtotal above the threshold ships free", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "committed-hoodie", Size: catalog.SizeM, Color: catalog.ColorBlack, Quantity: 2}}

		totals := ComputeTotals(items, testLookup)

		assert.InDelta(t, 179.98, totals.Subtotal, 0.0001)
		assert.Zero(t, totals.Shipping)
	})

	t.Run("tax is eight percent of the subtotal", func(t *testing.T) {
		items := []cart.LineItem{
			{ProductID: "committed-hoodie", Size: catalog.SizeM, Color: catalog.ColorBlack, Quantity: 2},
			{ProductID: "404-not-found-tee", Size: catalog.SizeL, Color: catalog.ColorWhite, Quantity: 1},
		}

		totals := ComputeTotals(items, testLookup)

		assert.InDelta(t, 229.97, totals.Subtotal, 0.0001)
		assert.InDelta(t, 229.97*0.08, totals.Tax, 0.0001)
		assert.InDelta(t, 229.97*1.08, totals.Total, 0.0001)
	})

	t.Run("items missing from the catalog contribute zero", func(t *testing.T) {
		items := []cart.LineItem{
			{ProductID: "discontinued", Size: catalog.SizeM, Color: catalog.ColorBlack, Quantity: 3},
			{ProductID: "404-not-found-tee", Size: catalog.SizeL, Color: catalog.ColorWhite, Quantity: 1},
		}

		totals := ComputeTotals(items, testLookup)

		assert.InDelta(t, 49.99, totals.Subtotal, 0.0001)
		assert.InDelta(t, 9.99, totals.Shipping, 0.0001)
	})
}
