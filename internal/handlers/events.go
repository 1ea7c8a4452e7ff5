package handlers

import (
	"context"
	"log"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/database"
	"kazistore/internal/models"
)

/*
GET /admin/api/orders/stream
Server-sent events for the staff dashboard. Every change to the orders
collection produces a FULL snapshot event; clients re-derive their view from
each snapshot and never rely on deltas. The subscription ends when the client
disconnects.
*/
func OrderStream(db *mongo.Database, watcher *database.Watcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/stream"

		ticks, cancel := watcher.Subscribe()
		defer cancel()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		// Initial snapshot so a fresh dashboard renders immediately.
		if !emitOrderSnapshot(c, db, route) {
			return
		}

		for {
			select {
			case <-c.Request.Context().Done():
				return
			case <-ticks:
				if !emitOrderSnapshot(c, db, route) {
					return
				}
			}
		}
	}
}

func emitOrderSnapshot(c *gin.Context, db *mongo.Database, route string) bool {
	ctx, cancelTimeout := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancelTimeout()

	orders, err := fetchAllOrders(ctx, db)
	if err != nil {
		log.Printf("[%s] snapshot fetch failed: %v", route, err)
		c.SSEvent("error", gin.H{"error": "snapshot unavailable"})
		c.Writer.Flush()
		return false
	}

	c.SSEvent("orders", orders)
	c.Writer.Flush()
	return true
}

func fetchAllOrders(ctx context.Context, db *mongo.Database) ([]models.Order, error) {
	cursor, err := db.Collection("orders").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
