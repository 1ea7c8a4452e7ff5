package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kazistore/internal/models"
)

func parseBearer(header, secret string) (jwt.MapClaims, bool) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return nil, false
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// UserAuth validates the access token and injects userId and role into the
// request context.
func UserAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c.GetHeader("Authorization"), secret)
		if !ok {
			log.Println("[AUTH] [ERROR] token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(sub))
		if err != nil {
			log.Println("[AUTH] [ERROR] invalid sub claim")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		role, _ := claims["role"].(string)

		c.Set("userId", userID)
		c.Set("role", models.UserRole(role))
		c.Next()
	}
}

// AuthGuard validates the token and requires one of the allowed roles.
func AuthGuard(secret string, allowedRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c.GetHeader("Authorization"), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		role, _ := claims["role"].(string)
		if len(allowedRoles) > 0 {
			match := false
			for _, r := range allowedRoles {
				if models.UserRole(role) == r {
					match = true
					break
				}
			}
			if !match {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		if sub, _ := claims["sub"].(string); sub != "" {
			if userID, err := primitive.ObjectIDFromHex(sub); err == nil {
				c.Set("userId", userID)
			}
		}
		c.Set("role", models.UserRole(role))
		c.Next()
	}
}

// AdminAuth gates the staff dashboard surface.
func AdminAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, models.RoleAdmin)
}
