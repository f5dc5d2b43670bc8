package routes

import (
	"streetlens-admin/controllers"
	"streetlens-admin/live"
	"streetlens-admin/middlewares"

	"github.com/gin-gonic/gin"
)

// LiveRoutes sets up the WebSocket snapshot stream
func LiveRoutes(r *gin.Engine, hub *live.Hub) {
	r.GET("/ws/issues", middlewares.AuthMiddleware(), controllers.IssueStream(hub))
}
