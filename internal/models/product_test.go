package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantAvailability(t *testing.T) {
	tests := []struct {
		name    string
		variant ProductVariant
		want    string
		canBuy  bool
	}{
		{"in stock", ProductVariant{Stock: 5}, AvailabilityInStock, true},
		{"pre-order via lead time", ProductVariant{Stock: 0, LeadTime: "7-14 days"}, AvailabilityPreOrder, true},
		{"plain out of stock", ProductVariant{Stock: 0}, AvailabilityOutOfStock, false},
		{"coming soon trumps stock", ProductVariant{Stock: 10, IsComingSoon: true}, AvailabilityComingSoon, false},
		{"coming soon trumps lead time", ProductVariant{Stock: 0, LeadTime: "2 weeks", IsComingSoon: true}, AvailabilityComingSoon, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.variant.availability())
			assert.Equal(t, tt.canBuy, tt.variant.IsPurchasable())
		})
	}
}

func TestProductNormalizeFillsAvailability(t *testing.T) {
	p := Product{Variants: []ProductVariant{{Stock: 3}, {Stock: 0}}}
	p.Normalize()

	assert.Equal(t, AvailabilityInStock, p.Variants[0].Availability)
	assert.Equal(t, AvailabilityOutOfStock, p.Variants[1].Availability)
}

func TestProductVariantLookup(t *testing.T) {
	p := Product{Variants: []ProductVariant{{ID: "v1", SKU: "WS-BLK-S"}}}

	v, ok := p.Variant("v1")
	assert.True(t, ok)
	assert.Equal(t, "WS-BLK-S", v.SKU)

	_, ok = p.Variant("v2")
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "waffle-shirts", Slugify("Waffle Shirts"))
	assert.Equal(t, "bags-more", Slugify("  Bags & More! "))
}
