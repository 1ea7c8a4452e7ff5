package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/database"
	"kazistore/internal/models"
)

/*
GET /products
- Optional filters: ?category=<id|slug is resolved client-side>, ?featured=true, ?search=<name substring>
- Pagination only applies when page + limit are both present
- Filtering and sorting happen in memory after fetch so the seed fallback and
  the remote path share one code path
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		products, err := database.FetchProducts(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		products = filterProducts(products, productFilter{
			CategoryID:   strings.TrimSpace(c.Query("category")),
			FeaturedOnly: c.Query("featured") == "true",
			Search:       strings.TrimSpace(c.Query("search")),
		})

		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			products = paginate(products, page, limit)
		}

		for i := range products {
			products[i].Normalize()
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		products, err := database.FetchProducts(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		id := c.Param("id")
		for _, p := range products {
			if p.ID.Hex() == id {
				p.Normalize()
				c.JSON(http.StatusOK, p)
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	}
}

func GetCategories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		categories, err := database.FetchCategories(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		sort.SliceStable(categories, func(i, j int) bool {
			return categories[i].Name < categories[j].Name
		})

		c.JSON(http.StatusOK, categories)
	}
}

type productFilter struct {
	CategoryID   string
	FeaturedOnly bool
	Search       string
}

func filterProducts(products []models.Product, f productFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
