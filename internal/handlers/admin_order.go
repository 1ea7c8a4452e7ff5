package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders lists every order for the staff dashboard, newest first.
func GetAllOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{})
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

/*
PATCH /admin/api/orders/:id/status
The wired staff action is "Verify Payment" (PENDING_VERIFICATION →
PROCESSING) after checking the MoMo statement by hand, but the endpoint
accepts any transition a live order allows. Terminal orders never move.
*/
func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		next, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		var order models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if !order.Status.CanTransitionTo(next) {
			c.JSON(http.StatusConflict, gin.H{
				"error":  "status transition not allowed",
				"status": order.Status,
			})
			return
		}

		_, err = db.Collection("orders").UpdateOne(ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": bson.M{"status": next}})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[ORDER] [INFO] %s: %s -> %s", orderID.Hex(), order.Status, next)
		c.JSON(http.StatusOK, gin.H{"status": next})
	}
}

func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}

type orderStats struct {
	Revenue             float64 `json:"revenue"`
	PendingVerification int     `json:"pendingVerification"`
	TotalOrders         int     `json:"totalOrders"`
	ManualSalesTotal    float64 `json:"manualSalesTotal"`
}

// computeOrderStats derives the dashboard numbers. Pure and recomputed on
// every request; cancelled orders never count toward revenue.
func computeOrderStats(orders []models.Order, manualSales []models.ManualSale) orderStats {
	stats := orderStats{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status != models.StatusCancelled {
			stats.Revenue += o.TotalAmount
		}
		if o.Status == models.StatusPendingVerification {
			stats.PendingVerification++
		}
	}
	for _, s := range manualSales {
		stats.ManualSalesTotal += s.Amount
	}
	return stats
}

func GetDashboardStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/stats"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		salesCursor, err := db.Collection("manualSales").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		var manualSales []models.ManualSale
		if err := salesCursor.All(ctx, &manualSales); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, computeOrderStats(orders, manualSales))
	}
}
