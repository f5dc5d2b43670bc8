package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"streetlens-admin/config"
	"streetlens-admin/middlewares"
	"streetlens-admin/models"
	"streetlens-admin/store"
	authUtils "streetlens-admin/utils"

	"github.com/gin-gonic/gin"
)

func issueStore() *store.IssueStore {
	return store.NewIssueStore(config.GetCollection("issues"))
}

func citizenStore() *store.CitizenStore {
	return store.NewCitizenStore(config.GetCollection("users"))
}

// LoginUser authenticates an admin against the users collection. Citizens
// exist in the same collection but are never allowed into this portal.
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := citizenStore().FindByEmail(ctx, input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Role == models.RoleCitizen {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. This portal is for admins only."})
		return
	}

	token, err := authUtils.GenerateToken(user.UserID)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production", // false for HTTP (dev), true for HTTPS (prod)
		HttpOnly: true,                        // still protect from JS access
		SameSite: http.SameSiteNoneMode,       // Required for cross-origin cookies in production
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"userId":    user.UserID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}

// GetMe retrieves the authenticated admin's information. Admins provisioned
// out-of-band have no profile document; they still get a valid identity back.
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := citizenStore().FetchByUID(ctx, userID.(string))
	if err == store.ErrNotFound {
		c.JSON(http.StatusOK, gin.H{
			"userId": userID,
			"role":   models.RoleAdmin,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":    user.UserID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}

// LogoutUser handles logout by clearing the auth_token cookie
func LogoutUser(c *gin.Context) {
	middlewares.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
