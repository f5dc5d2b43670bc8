package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"streetlens-admin/config"
	"streetlens-admin/models"
	authUtils "streetlens-admin/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResolveRole maps an authenticated identity to its role. An identity with
// no stored profile is treated as admin: those accounts are provisioned
// out-of-band and never get a users document.
func ResolveRole(ctx context.Context, userID string) (models.Role, error) {
	var profile models.Citizen
	err := config.GetCollection("users").FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return models.RoleAdmin, nil
	}
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

// ClearSession expires the auth cookie.
func ClearSession(c *gin.Context) {
	domain := ""
	c.SetCookie("auth_token", "", -1, "/", domain, false, true)
}

// AuthMiddleware validates the session token (cookie or bearer header) and
// gates the request on the admin role. A citizen-role identity gets its
// session invalidated immediately rather than a recoverable error.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth_token")
		if err != nil || tokenString == "" {
			authHeader := c.Request.Header.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString = authHeader[7:]
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		userID, err := authUtils.ParseToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		role, err := ResolveRole(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})
			c.Abort()
			return
		}
		if role == models.RoleCitizen {
			ClearSession(c)
			c.JSON(http.StatusForbidden, gin.H{"error": "This portal is for admins only"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
