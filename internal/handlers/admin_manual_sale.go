package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

type ManualSaleRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

func GetManualSales(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("manualSales").Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		var sales []models.ManualSale
		if err := cursor.All(ctx, &sales); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		sort.SliceStable(sales, func(i, j int) bool {
			return sales[i].CreatedAt.After(sales[j].CreatedAt)
		})

		c.JSON(http.StatusOK, gin.H{"data": sales})
	}
}

func CreateManualSale(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ManualSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
			return
		}

		recordedBy := ""
		if userID, ok := c.Get("userId"); ok {
			if id, ok := userID.(primitive.ObjectID); ok {
				recordedBy = id.Hex()
			}
		}

		sale := models.ManualSale{
			Description: strings.TrimSpace(req.Description),
			Amount:      req.Amount,
			RecordedBy:  recordedBy,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("manualSales").InsertOne(ctx, sale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		sale.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, sale)
	}
}

func DeleteManualSale(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("manualSales").DeleteOne(ctx, bson.M{"_id": saleID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "manual sale not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "manual sale deleted"})
	}
}
