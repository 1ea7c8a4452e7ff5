package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kazistore/internal/models"
)

// The elevation flow promotes a signed-in customer to ADMIN when they supply
// the master PIN. Cleartext compare, no rate limiting, no audit trail beyond
// the elevatedAt timestamp: an operational shortcut for a single-operator
// shop, unsuitable for adversarial contexts.

type ElevateRequest struct {
	PIN string `json:"pin" binding:"required"`
}

var (
	errAlreadyAdmin = errors.New("already an admin")
	errWrongPIN     = errors.New("incorrect pin")
)

func checkElevation(role models.UserRole, submittedPIN, masterPIN string) error {
	if role == models.RoleAdmin {
		return errAlreadyAdmin
	}
	if masterPIN == "" || submittedPIN != masterPIN {
		return errWrongPIN
	}
	return nil
}

func Elevate(db *mongo.Database, masterPIN, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/elevate"
		defer handlePanic(c, route)

		userID, ok := c.Get("userId")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req ElevateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pin is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
		defer cancel()

		var user models.UserProfile
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		switch err := checkElevation(user.Role, req.PIN, masterPIN); {
		case errors.Is(err, errAlreadyAdmin):
			c.JSON(http.StatusOK, gin.H{"role": user.Role, "message": "already elevated"})
			return
		case errors.Is(err, errWrongPIN):
			log.Println("[ELEVATE] [WARN] rejected elevation attempt for:", user.Email)
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		now := time.Now()
		_, err := db.Collection("users").UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"role": models.RoleAdmin, "elevatedAt": now, "updatedAt": now}})
		if err != nil {
			log.Println("[ELEVATE] [ERROR] elevation update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		// Reissue the access token so the new role takes effect without a
		// fresh login.
		user.Role = models.RoleAdmin
		accessToken, err := issueAccessToken(user, jwtSecret, accessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Println("[ELEVATE] [INFO] profile elevated to admin:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"role":        models.RoleAdmin,
			"elevatedAt":  now,
			"accessToken": accessToken,
		})
	}
}
