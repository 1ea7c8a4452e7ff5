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

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type CategoryUpdateRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func GetAllCategories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("categories").Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		var categories []models.Category
		if err := cursor.All(ctx, &categories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": categories})
	}
}

/*
POST /admin/api/categories
- Duplicate names are rejected
- Slug is derived from the name when omitted
*/
func CreateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			slug = models.Slugify(name)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}

		category := models.Category{
			Name:      name,
			Slug:      slug,
			CreatedAt: time.Now(),
		}

		result, err := db.Collection("categories").InsertOne(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		category.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req CategoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		set := bson.M{}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			set["name"] = name
		}
		if req.Slug != nil {
			set["slug"] = strings.TrimSpace(*req.Slug)
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("categories").UpdateOne(ctx, bson.M{"_id": categoryID}, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "category updated"})
	}
}

func DeleteCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		res, err := db.Collection("categories").DeleteOne(ctx, bson.M{"_id": categoryID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}
