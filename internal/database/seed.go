package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

// The storefront ships with a bundled default dataset so an empty remote
// collection still renders a browsable shop. The fallback is a single branch
// in the fetch helpers below; seed data and remote data never mix.

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

var (
	seedCategoryShirts = mustObjectID("650000000000000000000c01")
	seedCategoryBags   = mustObjectID("650000000000000000000c02")
	seedCategoryAcc    = mustObjectID("650000000000000000000c03")

	seedProductKnit      = mustObjectID("650000000000000000000a01")
	seedProductTote      = mustObjectID("650000000000000000000a02")
	seedProductMessenger = mustObjectID("650000000000000000000a03")

	seedPromoWelcome = mustObjectID("650000000000000000000b01")
)

func SeedCategories() []models.Category {
	return []models.Category{
		{ID: seedCategoryShirts, Name: "Waffle Shirts", Slug: "waffle-shirts"},
		{ID: seedCategoryBags, Name: "Bags", Slug: "bags"},
		{ID: seedCategoryAcc, Name: "Accessories", Slug: "accessories"},
	}
}

func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          seedProductKnit,
			Name:        "Essential Waffle Knit",
			Description: "Premium textured cotton waffle knit. Breathable, durable, and crafted for everyday versatility in African climates.",
			CategoryID:  seedCategoryShirts.Hex(),
			BasePrice:   15000,
			Images: []string{
				"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=800",
			},
			IsFeatured: true,
			Variants: []models.ProductVariant{
				{ID: "v-1-s-b", SKU: "WS-BLK-S", Size: "S", ColorName: "Obsidian", HexColor: "#1a1a1a", Price: 15000, Stock: 12},
				{ID: "v-1-m-b", SKU: "WS-BLK-M", Size: "M", ColorName: "Obsidian", HexColor: "#1a1a1a", Price: 15000, Stock: 5},
				{ID: "v-1-l-b", SKU: "WS-BLK-L", Size: "L", ColorName: "Obsidian", HexColor: "#1a1a1a", Price: 15000, Stock: 0},
				{ID: "v-1-s-o", SKU: "WS-OLV-S", Size: "S", ColorName: "Olive Drab", HexColor: "#556b2f", Price: 15000, Stock: 8},
				{ID: "v-1-m-o", SKU: "WS-OLV-M", Size: "M", ColorName: "Olive Drab", HexColor: "#556b2f", Price: 15500, Stock: 3},
			},
		},
		{
			ID:          seedProductTote,
			Name:        "Day-to-Night Tote",
			Description: "A heavy-duty canvas bag designed for the hustle. Reinforced straps and water-resistant lining.",
			CategoryID:  seedCategoryBags.Hex(),
			BasePrice:   28000,
			Images: []string{
				"https://images.unsplash.com/photo-1544816153-12ad5d7133a1?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?auto=format&fit=crop&q=80&w=800",
			},
			IsFeatured: true,
			Variants: []models.ProductVariant{
				{ID: "v-2-tan", SKU: "BAG-TAN", ColorName: "Desert Tan", HexColor: "#d2b48c", Price: 28000, Stock: 20},
				{ID: "v-2-blu", SKU: "BAG-BLU", ColorName: "Indigo", HexColor: "#000080", Price: 28000, Stock: 0, IsComingSoon: true},
			},
		},
		{
			ID:          seedProductMessenger,
			Name:        "Urban Canvas Messenger",
			Description: "Sleek, minimalist messenger bag for your tech essentials.",
			CategoryID:  seedCategoryBags.Hex(),
			BasePrice:   35000,
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&q=80&w=800",
			},
			Variants: []models.ProductVariant{
				{ID: "v-3-gr", SKU: "MSG-GRY", ColorName: "Concrete", HexColor: "#808080", Price: 35000, Stock: 10},
			},
		},
	}
}

func SeedPromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID:          seedPromoWelcome,
			Code:        "WELCOME24",
			Description: "Launch Discount",
			Type:        models.PromotionPercent,
			Value:       10,
			TargetType:  models.TargetStore,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}
}

func DefaultSettings() models.StoreSettings {
	return models.StoreSettings{
		MomoNumber:       "0781234567",
		MomoName:         "KAZI RETAIL LTD",
		MomoInstructions: "Please pay the exact amount to the number below. Use your Order ID as reference.",
	}
}

// FetchProducts returns the remote product set, or the bundled seed when the
// collection is empty.
func FetchProducts(ctx context.Context, db *mongo.Database) ([]models.Product, error) {
	cursor, err := db.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return productsOrSeed(products), nil
}

// FetchCategories returns the remote category set, or the bundled seed when
// the collection is empty.
func FetchCategories(ctx context.Context, db *mongo.Database) ([]models.Category, error) {
	cursor, err := db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categoriesOrSeed(categories), nil
}

// FetchPromotions returns the remote promotion set, or the bundled seed when
// the collection is empty.
func FetchPromotions(ctx context.Context, db *mongo.Database) ([]models.Promotion, error) {
	cursor, err := db.Collection("promotions").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promotions []models.Promotion
	if err := cursor.All(ctx, &promotions); err != nil {
		return nil, err
	}
	return promotionsOrSeed(promotions), nil
}

// FetchSettings returns the settings document, or defaults when absent.
func FetchSettings(ctx context.Context, db *mongo.Database) (models.StoreSettings, error) {
	var settings models.StoreSettings
	err := db.Collection("settings").FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return DefaultSettings(), nil
	}
	if err != nil {
		return models.StoreSettings{}, err
	}
	return settings, nil
}

func productsOrSeed(fetched []models.Product) []models.Product {
	if len(fetched) == 0 {
		return SeedProducts()
	}
	return fetched
}

func categoriesOrSeed(fetched []models.Category) []models.Category {
	if len(fetched) == 0 {
		return SeedCategories()
	}
	return fetched
}

func promotionsOrSeed(fetched []models.Promotion) []models.Promotion {
	if len(fetched) == 0 {
		return SeedPromotions()
	}
	return fetched
}
