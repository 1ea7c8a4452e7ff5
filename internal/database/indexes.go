package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_index"),
	}

	log.Println("EnsureOrderIndexes: creating userId_index index")
	_, err := db.Collection("orders").Indexes().CreateOne(ctx, userIDIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: userId index error:", err)
		return err
	}
	return nil
}

func EnsurePromotionIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	codeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "code", Value: 1}},
		Options: options.Index().
			SetName("code_unique").
			SetUnique(true),
	}

	log.Println("EnsurePromotionIndexes: creating code_unique index")
	_, err := db.Collection("promotions").Indexes().CreateOne(ctx, codeIndex)
	if err != nil {
		log.Println("EnsurePromotionIndexes: code index error:", err)
		return err
	}
	return nil
}

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "categoryId", Value: 1}},
		Options: options.Index().SetName("categoryId_index"),
	}

	log.Println("EnsureProductIndexes: creating categoryId_index index")
	_, err := db.Collection("products").Indexes().CreateOne(ctx, categoryIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: categoryId index error:", err)
		return err
	}
	return nil
}
