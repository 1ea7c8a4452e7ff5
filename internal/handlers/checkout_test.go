package handlers

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"kazistore/internal/cart"
	"kazistore/internal/models"
)

func checkoutCatalog(t *testing.T) cart.Catalog {
	t.Helper()

	id, err := primitive.ObjectIDFromHex("65a000000000000000000001")
	if err != nil {
		t.Fatal(err)
	}

	return cart.Catalog{
		{
			ID:   id,
			Name: "Essential Waffle Knit",
			Variants: []models.ProductVariant{
				{ID: "v1", SKU: "WS-BLK-S", Price: 100, Stock: 10},
				{ID: "v2", SKU: "BAG-BLU", Price: 28000, Stock: 0, IsComingSoon: true},
			},
		},
	}
}

func checkoutRequest(catalog cart.Catalog) CheckoutRequest {
	return CheckoutRequest{
		Items:             []cart.Item{{ProductID: catalog[0].ID.Hex(), VariantID: "v1", Quantity: 2}},
		CustomerName:      "Amina K",
		CustomerPhone:     "0781234567",
		City:              "Kampala",
		DetailedAddress:   "Apartment 4B, Kisementi Mall",
		MomoTransactionID: "id123abc",
	}
}

func TestBuildOrderStartsPendingVerification(t *testing.T) {
	catalog := checkoutCatalog(t)

	order, err := buildOrderFromCheckout(checkoutRequest(catalog), models.GuestUserID, catalog, nil, time.Now())
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if order.Status != models.StatusPendingVerification {
		t.Fatalf("expected status PENDING_VERIFICATION, got %s", order.Status)
	}
}

func TestBuildOrderUppercasesMomoTransactionID(t *testing.T) {
	catalog := checkoutCatalog(t)

	order, err := buildOrderFromCheckout(checkoutRequest(catalog), models.GuestUserID, catalog, nil, time.Now())
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if order.MomoTransactionID != "ID123ABC" {
		t.Fatalf("expected momo id ID123ABC, got %q", order.MomoTransactionID)
	}
}

func TestBuildOrderJoinsDeliveryAddress(t *testing.T) {
	catalog := checkoutCatalog(t)

	order, err := buildOrderFromCheckout(checkoutRequest(catalog), models.GuestUserID, catalog, nil, time.Now())
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if order.DeliveryAddress != "Kampala, Apartment 4B, Kisementi Mall" {
		t.Fatalf("unexpected delivery address %q", order.DeliveryAddress)
	}
}

func TestBuildOrderPricesFromCatalogAndAppliesPromo(t *testing.T) {
	catalog := checkoutCatalog(t)
	promos := []models.Promotion{{
		Code:       "WELCOME24",
		Type:       models.PromotionPercent,
		Value:      10,
		TargetType: models.TargetStore,
	}}

	req := checkoutRequest(catalog)
	req.PromoCode = "welcome24"

	order, err := buildOrderFromCheckout(req, models.GuestUserID, catalog, promos, time.Now())
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if order.Subtotal != 200 {
		t.Fatalf("expected subtotal 200, got %v", order.Subtotal)
	}
	if order.Discount != 20 {
		t.Fatalf("expected discount 20, got %v", order.Discount)
	}
	if order.TotalAmount != 180 {
		t.Fatalf("expected total 180, got %v", order.TotalAmount)
	}
}

func TestBuildOrderRejectsEmptyCart(t *testing.T) {
	catalog := checkoutCatalog(t)
	req := checkoutRequest(catalog)
	req.Items = nil

	if _, err := buildOrderFromCheckout(req, models.GuestUserID, catalog, nil, time.Now()); err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestBuildOrderRejectsComingSoonVariant(t *testing.T) {
	catalog := checkoutCatalog(t)
	req := checkoutRequest(catalog)
	req.Items = []cart.Item{{ProductID: catalog[0].ID.Hex(), VariantID: "v2", Quantity: 1}}

	_, err := buildOrderFromCheckout(req, models.GuestUserID, catalog, nil, time.Now())
	if err == nil {
		t.Fatal("expected error for coming-soon variant")
	}
}

func TestBuildOrderDropsUnresolvableLines(t *testing.T) {
	catalog := checkoutCatalog(t)
	req := checkoutRequest(catalog)
	req.Items = append(req.Items, cart.Item{ProductID: "deadbeefdeadbeefdeadbeef", VariantID: "gone", Quantity: 3})

	order, err := buildOrderFromCheckout(req, models.GuestUserID, catalog, nil, time.Now())
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected unresolvable line to be dropped, got %d items", len(order.Items))
	}
	if order.Subtotal != 200 {
		t.Fatalf("expected subtotal 200 ignoring unresolvable line, got %v", order.Subtotal)
	}
}

func TestBuildQuoteMarksUnavailableLines(t *testing.T) {
	catalog := checkoutCatalog(t)
	req := QuoteRequest{Items: []cart.Item{
		{ProductID: catalog[0].ID.Hex(), VariantID: "v1", Quantity: 2},
		{ProductID: catalog[0].ID.Hex(), VariantID: "missing", Quantity: 1},
	}}

	resp := buildQuote(req, catalog, nil, time.Now())
	if resp.Subtotal != 200 {
		t.Fatalf("expected subtotal 200, got %v", resp.Subtotal)
	}
	if resp.Lines[0].Available != true || resp.Lines[1].Available != false {
		t.Fatalf("unexpected availability flags: %+v", resp.Lines)
	}
	if resp.Total != 200 {
		t.Fatalf("expected total 200 without promo, got %v", resp.Total)
	}
}

func TestBuildQuoteInvalidPromoDegrades(t *testing.T) {
	catalog := checkoutCatalog(t)
	req := QuoteRequest{
		Items:     []cart.Item{{ProductID: catalog[0].ID.Hex(), VariantID: "v1", Quantity: 1}},
		PromoCode: "NOPE",
	}

	resp := buildQuote(req, catalog, nil, time.Now())
	if resp.Discount != 0 {
		t.Fatalf("expected no discount for invalid code, got %v", resp.Discount)
	}
	if resp.PromoError == "" {
		t.Fatal("expected promoError to be set for invalid code")
	}
}
