package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/cart"
	"kazistore/internal/database"
	"kazistore/internal/models"
	"kazistore/internal/promo"
)

type QuoteRequest struct {
	Items     []cart.Item `json:"items" binding:"required"`
	PromoCode string      `json:"promoCode"`
}

type QuoteLine struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId"`
	Name      string  `json:"name,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	Available bool    `json:"available"`
}

type QuoteResponse struct {
	Lines      []QuoteLine `json:"lines"`
	ItemCount  int         `json:"itemCount"`
	Subtotal   float64     `json:"subtotal"`
	Discount   float64     `json:"discount"`
	Total      float64     `json:"total"`
	PromoCode  string      `json:"promoCode,omitempty"`
	PromoError string      `json:"promoError,omitempty"`
}

// Quote prices a client cart against the live catalog. Unresolvable lines are
// marked unavailable and contribute nothing; an invalid promo code degrades
// to no discount. Neither case is an error.
func Quote(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/quote"
		defer handlePanic(c, route)

		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		catalog, err := database.FetchProducts(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		promotions, err := database.FetchPromotions(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, buildQuote(req, catalog, promotions, time.Now()))
	}
}

func buildQuote(req QuoteRequest, catalog cart.Catalog, promotions []models.Promotion, now time.Time) QuoteResponse {
	resp := QuoteResponse{
		Lines:     make([]QuoteLine, 0, len(req.Items)),
		ItemCount: cart.ItemCount(req.Items),
	}

	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		line := QuoteLine{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  quantity,
		}
		if product, variant, ok := catalog.ResolveVariant(item.ProductID, item.VariantID); ok {
			line.Name = product.Name
			line.UnitPrice = variant.Price
			line.LineTotal = variant.Price * float64(quantity)
			line.Available = true
			resp.Subtotal += line.LineTotal
		}
		resp.Lines = append(resp.Lines, line)
	}

	if code := req.PromoCode; code != "" {
		p, err := promo.FindActive(code, promotions, now)
		switch {
		case errors.Is(err, promo.ErrNotFound):
			resp.PromoError = "invalid code"
		case errors.Is(err, promo.ErrNotActive):
			resp.PromoError = "code expired"
		case p.TargetType != models.TargetStore:
			// Category/product scoping is modeled but not applied at
			// checkout.
			resp.PromoError = "code not applicable"
		default:
			resp.PromoCode = p.Code
			resp.Discount = promo.Discount(p, resp.Subtotal)
		}
	}

	resp.Total = promo.FinalTotal(resp.Subtotal, resp.Discount)
	return resp
}
