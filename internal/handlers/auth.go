package handlers

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"kazistore/internal/models"
)

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func profileResponse(user models.UserProfile) gin.H {
	return gin.H{
		"uid":       user.ID.Hex(),
		"fullName":  user.FullName,
		"email":     user.Email,
		"phone":     user.Phone,
		"city":      user.City,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	}
}

// Register creates a profile with role CUSTOMER and signs the caller in.
func Register(db *mongo.Database, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/register"
		defer handlePanic(c, route)

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		fullName := strings.TrimSpace(req.FullName)
		password := strings.TrimSpace(req.Password)
		if email == "" || fullName == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fullName, email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			log.Println("[AUTH] [ERROR] register db error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			log.Println("[AUTH] [ERROR] register email exists:", email)
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[AUTH] [ERROR] register password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
			return
		}

		now := time.Now()
		user := models.UserProfile{
			FullName:     fullName,
			Email:        email,
			PasswordHash: string(hash),
			Phone:        strings.TrimSpace(req.Phone),
			City:         strings.TrimSpace(req.City),
			Role:         models.RoleCustomer,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		res, err := db.Collection("users").InsertOne(ctx, user)
		if err != nil {
			log.Println("[AUTH] [ERROR] register insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		user.ID = res.InsertedID.(primitive.ObjectID)

		tokens, err := issueTokens(c, db, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			return
		}

		log.Println("[AUTH] [INFO] user registered:", email)
		c.JSON(http.StatusCreated, gin.H{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
			"expiresIn":    tokens.ExpiresIn,
			"user":         profileResponse(user),
		})
	}
}

func Login(db *mongo.Database, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var user models.UserProfile
		err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err != nil {
			log.Println("[AUTH] [ERROR] login lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Println("[AUTH] [ERROR] login invalid credentials for:", email)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		tokens, err := issueTokens(c, db, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			return
		}

		log.Println("[AUTH] [INFO] login succeeded:", email)
		c.JSON(http.StatusOK, gin.H{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
			"expiresIn":    tokens.ExpiresIn,
			"user":         profileResponse(user),
		})
	}
}

func Refresh(db *mongo.Database, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/refresh"
		defer handlePanic(c, route)

		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var stored models.RefreshToken
		err := db.Collection("refresh_tokens").FindOne(ctx, bson.M{
			"tokenHash": hashToken(req.RefreshToken),
			"revoked":   false,
			"expiresAt": bson.M{"$gt": time.Now()},
		}).Decode(&stored)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		var user models.UserProfile
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": stored.UserID}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		// Rotate: revoke the old token before issuing a new pair.
		_, err = db.Collection("refresh_tokens").UpdateOne(ctx,
			bson.M{"_id": stored.ID},
			bson.M{"$set": bson.M{"revoked": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		tokens, err := issueTokens(c, db, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
			"expiresIn":    tokens.ExpiresIn,
		})
	}
}

func Logout(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		res, err := db.Collection("refresh_tokens").UpdateOne(ctx, bson.M{
			"tokenHash": hashToken(req.RefreshToken),
			"revoked":   false,
		}, bson.M{"$set": bson.M{"revoked": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// GetMe returns the caller's profile. The role field drives which surfaces
// the UI unlocks.
func GetMe(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get("userId")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		var user models.UserProfile
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			log.Println("[AUTH] [ERROR] get me failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, profileResponse(user))
	}
}

type issuedTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// issueTokens writes an error response itself on failure; callers just
// return on a non-nil error.
func issueTokens(c *gin.Context, db *mongo.Database, user models.UserProfile, secret string, accessTTL, refreshTTL time.Duration) (*issuedTokens, error) {
	accessToken, err := issueAccessToken(user, secret, accessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return nil, err
	}

	plainRefresh := generateRefreshString()
	if plainRefresh == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return nil, errors.New("could not generate refresh token")
	}

	now := time.Now()
	refresh := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(plainRefresh),
		ExpiresAt: now.Add(refreshTTL),
		Revoked:   false,
		CreatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := db.Collection("refresh_tokens").InsertOne(ctx, refresh); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return nil, err
	}

	return &issuedTokens{
		AccessToken:  accessToken,
		RefreshToken: plainRefresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func issueAccessToken(user models.UserProfile, secret string, accessTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"role":  string(user.Role),
		"email": user.Email,
		"exp":   time.Now().Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateRefreshString() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
