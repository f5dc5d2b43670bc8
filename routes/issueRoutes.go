package routes

import (
	"streetlens-admin/controllers"
	"streetlens-admin/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Every route is admin-gated; the
// mutating ones additionally go through the Redis write limiter.
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue", middlewares.AuthMiddleware())
	{
		issue.GET("", controllers.GetAllIssues)
		issue.GET("/analytics", controllers.GetIssueAnalytics)
		issue.GET("/:id", controllers.GetIssue)
		issue.GET("/:id/print", controllers.PrintIssue)
		issue.PATCH("/:id/status", middlewares.WriteRateLimiter(200), controllers.UpdateIssueStatus)
		issue.DELETE("/:id", middlewares.WriteRateLimiter(200), controllers.DeleteIssue)
	}
}
