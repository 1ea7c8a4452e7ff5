package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

type VariantRequest struct {
	ID           string  `json:"id"`
	SKU          string  `json:"sku" binding:"required"`
	Size         string  `json:"size"`
	ColorName    string  `json:"colorName" binding:"required"`
	HexColor     string  `json:"hexColor" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Stock        int     `json:"stock"`
	IsComingSoon bool    `json:"isComingSoon"`
	LeadTime     string  `json:"leadTime"`
}

type ProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	CategoryID  string           `json:"categoryId" binding:"required"`
	BasePrice   float64          `json:"basePrice" binding:"required"`
	Images      []string         `json:"images"`
	IsFeatured  bool             `json:"isFeatured"`
	Variants    []VariantRequest `json:"variants" binding:"required"`
}

// buildVariants validates variant fields and assigns ids to new variants.
// Variants are embedded in the product document, so they carry their own
// generated ids rather than Mongo ObjectIDs.
func buildVariants(reqs []VariantRequest) ([]models.ProductVariant, error) {
	if len(reqs) == 0 {
		return nil, errors.New("at least one variant is required")
	}

	variants := make([]models.ProductVariant, 0, len(reqs))
	seenSKUs := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		sku := strings.TrimSpace(r.SKU)
		if sku == "" {
			return nil, errors.New("variant sku is required")
		}
		if seenSKUs[sku] {
			return nil, fmt.Errorf("duplicate variant sku %q", sku)
		}
		seenSKUs[sku] = true

		if r.Price <= 0 {
			return nil, fmt.Errorf("variant %s: price must be greater than 0", sku)
		}
		if r.Stock < 0 {
			return nil, fmt.Errorf("variant %s: stock must not be negative", sku)
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = uuid.NewString()
		}

		variants = append(variants, models.ProductVariant{
			ID:           id,
			SKU:          sku,
			Size:         strings.TrimSpace(r.Size),
			ColorName:    strings.TrimSpace(r.ColorName),
			HexColor:     strings.TrimSpace(r.HexColor),
			Price:        r.Price,
			Stock:        r.Stock,
			IsComingSoon: r.IsComingSoon,
			LeadTime:     strings.TrimSpace(r.LeadTime),
		})
	}
	return variants, nil
}

// GetAllProducts lists everything for the admin panel, without the seed
// fallback: staff should see the true (possibly empty) remote state.
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})

		for i := range products {
			products[i].Normalize()
		}

		c.JSON(http.StatusOK, gin.H{"data": products})
	}
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		variants, err := buildVariants(req.Variants)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.BasePrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "basePrice must be greater than 0"})
			return
		}

		product := models.Product{
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			CategoryID:  strings.TrimSpace(req.CategoryID),
			BasePrice:   req.BasePrice,
			Images:      req.Images,
			IsFeatured:  req.IsFeatured,
			Variants:    variants,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		product.ID = res.InsertedID.(primitive.ObjectID)
		product.Normalize()

		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		variants, err := buildVariants(req.Variants)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		update := bson.M{"$set": bson.M{
			"name":        strings.TrimSpace(req.Name),
			"description": strings.TrimSpace(req.Description),
			"categoryId":  strings.TrimSpace(req.CategoryID),
			"basePrice":   req.BasePrice,
			"images":      req.Images,
			"isFeatured":  req.IsFeatured,
			"variants":    variants,
		}}

		res, err := db.Collection("products").UpdateOne(ctx, bson.M{"_id": productID}, update)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product updated"})
	}
}

// DeleteProduct removes the document outright. Carts referencing a deleted
// product simply fail to resolve it and price the line at 0.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": productID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
