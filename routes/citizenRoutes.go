package routes

import (
	"streetlens-admin/controllers"
	"streetlens-admin/middlewares"

	"github.com/gin-gonic/gin"
)

// CitizenRoutes sets up the citizen directory routes
func CitizenRoutes(r *gin.Engine) {
	citizens := r.Group("/api/citizens", middlewares.AuthMiddleware())
	{
		citizens.GET("", controllers.GetAllCitizens)
		citizens.GET("/:uid", controllers.GetCitizen)
	}
}
