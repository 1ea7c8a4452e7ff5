package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variant availability buckets derived from stock, lead time and the
// coming-soon flag.
const (
	AvailabilityInStock    = "IN_STOCK"
	AvailabilityPreOrder   = "PRE_ORDER"
	AvailabilityOutOfStock = "OUT_OF_STOCK"
	AvailabilityComingSoon = "COMING_SOON"
)

// ProductVariant is a purchasable SKU embedded in its product document.
type ProductVariant struct {
	ID           string  `bson:"id" json:"id"`
	SKU          string  `bson:"sku" json:"sku"`
	Size         string  `bson:"size,omitempty" json:"size,omitempty"`
	ColorName    string  `bson:"colorName" json:"colorName"`
	HexColor     string  `bson:"hexColor" json:"hexColor"`
	Price        float64 `bson:"price" json:"price"`
	Stock        int     `bson:"stock" json:"stock"`
	IsComingSoon bool    `bson:"isComingSoon" json:"isComingSoon"`
	LeadTime     string  `bson:"leadTime,omitempty" json:"leadTime,omitempty"`
	Availability string  `bson:"-" json:"availability"`
}

// IsPreOrder reports whether a sold-out variant can still be ordered
// against a stated lead time.
func (v ProductVariant) IsPreOrder() bool {
	return !v.IsComingSoon && v.Stock == 0 && v.LeadTime != ""
}

// IsPurchasable reports whether the variant may appear in a checkout.
// Coming-soon variants are never purchasable regardless of stock.
func (v ProductVariant) IsPurchasable() bool {
	if v.IsComingSoon {
		return false
	}
	return v.Stock > 0 || v.IsPreOrder()
}

func (v ProductVariant) availability() string {
	switch {
	case v.IsComingSoon:
		return AvailabilityComingSoon
	case v.Stock > 0:
		return AvailabilityInStock
	case v.IsPreOrder():
		return AvailabilityPreOrder
	default:
		return AvailabilityOutOfStock
	}
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID  string             `bson:"categoryId" json:"categoryId"`
	BasePrice   float64            `bson:"basePrice" json:"basePrice"`
	Images      []string           `bson:"images" json:"images"`
	Variants    []ProductVariant   `bson:"variants" json:"variants"`
	IsFeatured  bool               `bson:"isFeatured,omitempty" json:"isFeatured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Normalize fills the derived availability field on every variant before
// the product is written to a response.
func (p *Product) Normalize() {
	for i := range p.Variants {
		p.Variants[i].Availability = p.Variants[i].availability()
	}
}

// Variant returns the embedded variant with the given id.
func (p Product) Variant(variantID string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return ProductVariant{}, false
}
