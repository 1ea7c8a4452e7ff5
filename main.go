package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"kazistore/internal/config"
	"kazistore/internal/database"
	"kazistore/internal/handlers"
	"kazistore/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsurePromotionIndexes(db); err != nil {
		log.Printf("promotion index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}

	orderWatcher := database.NewWatcher(context.Background(), db, "orders")

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(db))
	r.GET("/products/:id", handlers.GetProduct(db))
	r.GET("/categories", handlers.GetCategories(db))
	r.GET("/settings", handlers.GetSettings(db))
	r.POST("/cart/quote", handlers.Quote(db))
	r.POST("/orders", handlers.CreateOrder(db, config.AppEnv.JWTSecret))

	r.POST("/auth/register", handlers.Register(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/login", handlers.Login(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/refresh", handlers.Refresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/logout", handlers.Logout(db))

	user := r.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/auth/me", handlers.GetMe(db))
		user.POST("/auth/elevate", handlers.Elevate(
			db,
			config.AppEnv.AdminMasterPIN,
			config.AppEnv.JWTSecret,
			config.AppEnv.AccessTokenTTL,
		))
		user.GET("/user/orders", handlers.GetMyOrders(db))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.GET("/categories", handlers.GetAllCategories(db))
		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.GET("/promotions", handlers.GetAllPromotions(db))
		admin.POST("/promotions", handlers.CreatePromotion(db))
		admin.DELETE("/promotions/:id", handlers.DeletePromotion(db))

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.GET("/orders/stream", handlers.OrderStream(db, orderWatcher))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(db))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))

		admin.GET("/stats", handlers.GetDashboardStats(db))

		admin.GET("/manual-sales", handlers.GetManualSales(db))
		admin.POST("/manual-sales", handlers.CreateManualSale(db))
		admin.DELETE("/manual-sales/:id", handlers.DeleteManualSale(db))

		admin.PUT("/settings", handlers.UpdateSettings(db))
		admin.POST("/uploads", handlers.UploadImage(config.AppEnv))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
