package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kazistore/internal/database"
	"kazistore/internal/models"
)

type SettingsRequest struct {
	MomoNumber       string `json:"momoNumber" binding:"required"`
	MomoName         string `json:"momoName" binding:"required"`
	MomoInstructions string `json:"momoInstructions"`
}

// GetSettings returns the MoMo payment details shown during checkout.
func GetSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		settings, err := database.FetchSettings(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

func UpdateSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		settings := models.StoreSettings{
			MomoNumber:       strings.TrimSpace(req.MomoNumber),
			MomoName:         strings.TrimSpace(req.MomoName),
			MomoInstructions: strings.TrimSpace(req.MomoInstructions),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		// Single settings document, upserted in place.
		_, err := db.Collection("settings").ReplaceOne(ctx, bson.M{}, settings,
			options.Replace().SetUpsert(true))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}
