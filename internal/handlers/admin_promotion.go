package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

type PromotionRequest struct {
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Value       float64 `json:"value" binding:"required"`
	TargetType  string  `json:"targetType"`
	TargetID    string  `json:"targetId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
}

func (r PromotionRequest) toPromotion() (models.Promotion, string) {
	code := strings.TrimSpace(r.Code)
	if code == "" {
		return models.Promotion{}, "code is required"
	}

	promoType := models.PromotionType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if promoType != models.PromotionPercent && promoType != models.PromotionFixed {
		return models.Promotion{}, "type must be PERCENT or FIXED"
	}
	if r.Value <= 0 {
		return models.Promotion{}, "value must be greater than 0"
	}
	if promoType == models.PromotionPercent && r.Value > 100 {
		return models.Promotion{}, "percent value must not exceed 100"
	}

	target := models.PromotionTarget(strings.ToUpper(strings.TrimSpace(r.TargetType)))
	if target == "" {
		target = models.TargetStore
	}
	switch target {
	case models.TargetStore, models.TargetCategory, models.TargetProduct:
	default:
		return models.Promotion{}, "targetType must be STORE, CATEGORY or PRODUCT"
	}

	promotion := models.Promotion{
		Code:        code,
		Description: strings.TrimSpace(r.Description),
		Type:        promoType,
		Value:       r.Value,
		TargetType:  target,
		TargetID:    strings.TrimSpace(r.TargetID),
	}

	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return models.Promotion{}, "startDate must be YYYY-MM-DD"
		}
		promotion.StartDate = start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return models.Promotion{}, "endDate must be YYYY-MM-DD"
		}
		// Keep a promotion valid through the whole end date.
		promotion.EndDate = end.Add(24*time.Hour - time.Second)
	}
	if !promotion.StartDate.IsZero() && !promotion.EndDate.IsZero() && promotion.EndDate.Before(promotion.StartDate) {
		return models.Promotion{}, "endDate must not be before startDate"
	}

	return promotion, ""
}

func GetAllPromotions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("promotions").Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		var promotions []models.Promotion
		if err := cursor.All(ctx, &promotions); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": promotions})
	}
}

func CreatePromotion(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PromotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		promotion, problem := req.toPromotion()
		if problem != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": problem})
			return
		}
		promotion.CreatedAt = time.Now()

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		// Codes are matched case-insensitively at checkout, so uniqueness is
		// checked the same way.
		count, err := db.Collection("promotions").CountDocuments(ctx, bson.M{
			"code": bson.M{"$regex": "^" + promotion.Code + "$", "$options": "i"},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "promotion code already exists"})
			return
		}

		res, err := db.Collection("promotions").InsertOne(ctx, promotion)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		promotion.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, promotion)
	}
}

func DeletePromotion(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		promoID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("promotions").DeleteOne(ctx, bson.M{"_id": promoID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "promotion deleted"})
	}
}
