package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedrip/internal/catalog"
	id "codedrip/pkg/domain"
)

func item(productID string, size catalog.Size, color catalog.Color, quantity int) LineItem {
	return LineItem{ProductID: id.ProductID(productID), Size: size, Color: color, Quantity: quantity}
}

func TestAddItem(t *testing.T) {
	t.Run("merges quantities for the same identity triple", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		items = AddItem(items, item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 2))

		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("keeps the merged entry in its original position", func(t *testing.T) {
		items := []LineItem{
			item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1),
			item("404-not-found-tee", catalog.SizeL, catalog.ColorWhite, 1),
		}

		items = AddItem(items, item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1))

		require.Len(t, items, 2)
		assert.Equal(t, id.ProductID("committed-hoodie"), items[0].ProductID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, id.ProductID("404-not-found-tee"), items[1].ProductID)
	})

	t.Run("same product in a different size is a distinct entry", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		items = AddItem(items, item("committed-hoodie", catalog.SizeL, catalog.ColorBlack, 1))

		assert.Len(t, items, 2)
	})

	t.Run("same product in a different color is a distinct entry", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		items = AddItem(items, item("committed-hoodie", catalog.SizeM, catalog.ColorCharcoal, 1))

		assert.Len(t, items, 2)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		_ = AddItem(items, item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 5))

		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("removes the matching entry", func(t *testing.T) {
		items := []LineItem{
			item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1),
			item("404-not-found-tee", catalog.SizeL, catalog.ColorWhite, 1),
		}

		items = RemoveItem(items, item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 0).Key())

		require.Len(t, items, 1)
		assert.Equal(t, id.ProductID("404-not-found-tee"), items[0].ProductID)
	})

	t.Run("removing an absent key is a no-op", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		items = RemoveItem(items, item("missing", catalog.SizeS, catalog.ColorNavy, 0).Key())

		assert.Len(t, items, 1)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		items = UpdateQuantity(items, items[0].Key(), 7)

		assert.Equal(t, 7, items[0].Quantity)
	})

	t.Run("quantity below one removes the entry", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 3)}

		assert.Empty(t, UpdateQuantity(items, items[0].Key(), 0))
		assert.Empty(t, UpdateQuantity(items, items[0].Key(), -2))
	})

	t.Run("never creates an entry for an unknown key", func(t *testing.T) {
		items := []LineItem{item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 1)}

		updated := UpdateQuantity(items, item("missing", catalog.SizeS, catalog.ColorNavy, 0).Key(), 4)

		assert.Equal(t, items, updated)
	})
}

func TestItemCount(t *testing.T) {
	items := []LineItem{
		item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 2),
		item("404-not-found-tee", catalog.SizeL, catalog.ColorWhite, 3),
	}
	assert.Equal(t, 5, ItemCount(items))
	assert.Equal(t, 0, ItemCount(nil))
}

func TestSubtotal(t *testing.T) {
	lookup := catalog.LookupFrom([]catalog.Product{
		{ID: "committed-hoodie", Price: 89.99},
		{ID: "404-not-found-tee", Price: 49.99},
	})

	t.Run("prices quantity times unit price", func(t *testing.T) {
		items := []LineItem{
			item("committed-hoodie", catalog.SizeM, catalog.ColorBlack, 2),
			item("404-not-found-tee", catalog.SizeL, catalog.ColorWhite, 1),
		}
		assert.InDelta(t, 229.97, Subtotal(items, lookup), 0.0001)
	})

	t.Run("missing products contribute zero", func(t *testing.T) {
		items := []LineItem{
			item("discontinued", catalog.SizeM, catalog.ColorBlack, 4),
			item("404-not-found-tee", catalog.SizeL, catalog.ColorWhite, 1),
		}
		assert.InDelta(t, 49.99, Subtotal(items, lookup), 0.0001)
	})
}
