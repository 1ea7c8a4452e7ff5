package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/cart"
	"kazistore/internal/database"
	"kazistore/internal/models"
	"kazistore/internal/promo"
)

type CheckoutRequest struct {
	Items             []cart.Item `json:"items" binding:"required"`
	CustomerName      string      `json:"customerName" binding:"required"`
	CustomerPhone     string      `json:"customerPhone" binding:"required"`
	City              string      `json:"city" binding:"required"`
	DetailedAddress   string      `json:"detailedAddress" binding:"required"`
	MomoTransactionID string      `json:"momoTransactionId" binding:"required"`
	PromoCode         string      `json:"promoCode"`
}

type variantUnavailableError struct {
	ProductID string
	VariantID string
}

func (e variantUnavailableError) Error() string {
	return fmt.Sprintf("variant %s is not available for purchase", e.VariantID)
}

/*
POST /orders
The customer has already sent the MoMo transfer out-of-band; this endpoint
records their claim of payment. Orders are therefore created directly in
PENDING_VERIFICATION, never PENDING_PAYMENT, and verification stays a human
decision on the staff side.
*/
func CreateOrder(db *mongo.Database, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		userID := userIDFromHeader(c.GetHeader("Authorization"), jwtSecret)

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

		order, err := buildOrderFromCheckout(req, userID, catalog, promotions, time.Now())
		if err != nil {
			var unavailable variantUnavailableError
			if errors.As(err, &unavailable) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "variant not available",
					"productId": unavailable.ProductID,
					"variantId": unavailable.VariantID,
				})
				return
			}
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		if order.UserID == models.GuestUserID {
			log.Println("[ORDER] [INFO] guest order created:", order.ID.Hex())
		} else {
			log.Println("[ORDER] [INFO] order created for user:", order.UserID)
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID.Hex(),
			"status":  order.Status,
			"total":   order.TotalAmount,
		})
	}
}

// GetMyOrders lists the caller's orders, newest first. Sorting happens
// client-side after an equality filter on userId.
func GetMyOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /user/orders"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{"userId": userID.Hex()})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})

		c.JSON(http.StatusOK, orders)
	}
}

// buildOrderFromCheckout freezes the cart into an order snapshot priced from
// the live catalog. Lines whose product or variant no longer exists are
// dropped (the cart can outlive catalog edits); coming-soon variants reject
// the whole checkout since they were never purchasable.
func buildOrderFromCheckout(req CheckoutRequest, userID string, catalog cart.Catalog, promotions []models.Promotion, now time.Time) (models.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	city := strings.TrimSpace(req.City)
	detail := strings.TrimSpace(req.DetailedAddress)
	momoID := strings.TrimSpace(req.MomoTransactionID)

	if name == "" || phone == "" || city == "" || detail == "" {
		return models.Order{}, errors.New("customerName, customerPhone, city and detailedAddress are required")
	}
	if momoID == "" {
		return models.Order{}, errors.New("momoTransactionId is required")
	}
	if len(req.Items) == 0 {
		return models.Order{}, errors.New("at least one item is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	subtotal := 0.0

	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		product, variant, ok := catalog.ResolveVariant(item.ProductID, item.VariantID)
		if !ok {
			continue
		}
		if variant.IsComingSoon {
			return models.Order{}, variantUnavailableError{ProductID: item.ProductID, VariantID: item.VariantID}
		}

		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      product.Name,
			UnitPrice: variant.Price,
			Quantity:  quantity,
		})
		subtotal += variant.Price * float64(quantity)
	}

	if len(items) == 0 {
		return models.Order{}, errors.New("no purchasable items in cart")
	}

	discount := 0.0
	promoCode := ""
	if req.PromoCode != "" {
		if p, err := promo.FindActive(req.PromoCode, promotions, now); err == nil && p.TargetType == models.TargetStore {
			discount = promo.Discount(p, subtotal)
			promoCode = p.Code
		}
	}

	return models.Order{
		UserID:            userID,
		Items:             items,
		Subtotal:          subtotal,
		Discount:          discount,
		TotalAmount:       promo.FinalTotal(subtotal, discount),
		PromoCode:         promoCode,
		Status:            models.StatusPendingVerification,
		MomoTransactionID: strings.ToUpper(momoID),
		CustomerName:      name,
		CustomerPhone:     phone,
		DeliveryAddress:   city + ", " + detail,
		CreatedAt:         now,
	}, nil
}

// userIDFromHeader resolves an optional bearer token to a user id; guest
// checkout is allowed, so a missing or invalid token is not an error.
func userIDFromHeader(header, secret string) string {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return models.GuestUserID
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return models.GuestUserID
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.GuestUserID
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.GuestUserID
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return models.GuestUserID
	}
	return sub
}
