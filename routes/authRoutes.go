package routes

import (
	"streetlens-admin/controllers"
	"streetlens-admin/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the session routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/logout", controllers.LogoutUser)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
	}
}
