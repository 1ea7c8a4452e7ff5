package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kazistore/internal/models"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()

	p1, err := primitive.ObjectIDFromHex("65a000000000000000000001")
	require.NoError(t, err)
	p2, err := primitive.ObjectIDFromHex("65a000000000000000000002")
	require.NoError(t, err)

	return Catalog{
		{
			ID:   p1,
			Name: "Essential Waffle Knit",
			Variants: []models.ProductVariant{
				{ID: "v1", SKU: "WS-BLK-S", Price: 100, Stock: 12},
				{ID: "v2", SKU: "WS-BLK-M", Price: 15500, Stock: 3},
			},
		},
		{
			ID:   p2,
			Name: "Day-to-Night Tote",
			Variants: []models.ProductVariant{
				{ID: "v3", SKU: "BAG-TAN", Price: 28000, Stock: 20},
			},
		},
	}
}

func TestTotalSumsResolvableItems(t *testing.T) {
	catalog := testCatalog(t)
	items := []Item{
		{ProductID: catalog[0].ID.Hex(), VariantID: "v1", Quantity: 2},
		{ProductID: catalog[1].ID.Hex(), VariantID: "v3", Quantity: 1},
	}

	assert.Equal(t, 2*100.0+28000.0, Total(items, catalog))
}

func TestTotalSkipsMissingCatalogEntries(t *testing.T) {
	catalog := testCatalog(t)
	items := []Item{
		{ProductID: catalog[0].ID.Hex(), VariantID: "v1", Quantity: 2},
		{ProductID: "deadbeefdeadbeefdeadbeef", VariantID: "gone", Quantity: 5},
		{ProductID: catalog[0].ID.Hex(), VariantID: "no-such-variant", Quantity: 3},
	}

	// Unresolvable lines contribute 0, they never raise an error.
	assert.Equal(t, 200.0, Total(items, catalog))
}

func TestTotalEmptyCart(t *testing.T) {
	assert.Zero(t, Total(nil, testCatalog(t)))
}

func TestItemCountIgnoresCatalog(t *testing.T) {
	items := []Item{
		{ProductID: "p", VariantID: "a", Quantity: 2},
		{ProductID: "q", VariantID: "b", Quantity: 7},
	}
	assert.Equal(t, 9, ItemCount(items))
}

func TestAddMergesByVariant(t *testing.T) {
	items := Add(nil, "p1", "v1", 2)
	items = Add(items, "p1", "v1", 3)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddAppendsNewVariant(t *testing.T) {
	items := Add(nil, "p1", "v1", 1)
	items = Add(items, "p1", "v2", 1)

	require.Len(t, items, 2)
	assert.Equal(t, "v2", items[1].VariantID)
}

func TestAddDoesNotMutateInput(t *testing.T) {
	original := []Item{{ProductID: "p1", VariantID: "v1", Quantity: 1}}
	_ = Add(original, "p1", "v1", 4)

	assert.Equal(t, 1, original[0].Quantity)
}

func TestUpdateQuantityFlooredAtOne(t *testing.T) {
	items := []Item{{ProductID: "p1", VariantID: "v1", Quantity: 2}}

	items = UpdateQuantity(items, "v1", -10)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = UpdateQuantity(items, "v1", 3)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestUpdateQuantityUnknownVariantIsNoop(t *testing.T) {
	items := []Item{{ProductID: "p1", VariantID: "v1", Quantity: 2}}
	next := UpdateQuantity(items, "missing", 5)

	assert.Equal(t, items, next)
}

func TestRemove(t *testing.T) {
	items := []Item{
		{ProductID: "p1", VariantID: "v1", Quantity: 2},
		{ProductID: "p1", VariantID: "v2", Quantity: 1},
	}

	items = Remove(items, "v1")
	require.Len(t, items, 1)
	assert.Equal(t, "v2", items[0].VariantID)

	// Absent variant: no-op.
	items = Remove(items, "v1")
	assert.Len(t, items, 1)
}
