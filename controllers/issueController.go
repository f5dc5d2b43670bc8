package controllers

import (
	"context"
	"net/http"
	"time"

	"streetlens-admin/filters"
	"streetlens-admin/models"
	"streetlens-admin/stats"
	"streetlens-admin/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllIssues returns every issue, narrowed by the status/category/search
// query parameters. Filtering runs in memory over the fetched snapshot, so
// the response preserves the store's newest-first order among matches.
func GetAllIssues(c *gin.Context) {
	filter := filters.IssueFilter{
		Status:   c.DefaultQuery("status", filters.All),
		Category: c.DefaultQuery("category", filters.All),
		Search:   c.Query("search"),
	}
	if filter.Status != filters.All && !models.ValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if filter.Category != filters.All && !models.ValidCategory(filter.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	matched := filters.Issues(issues, filter)

	c.JSON(http.StatusOK, gin.H{
		"issues":      matched,
		"totalIssues": len(issues),
		"shown":       len(matched),
	})
}

// GetIssue retrieves one issue together with the reporter's live profile.
// The issue itself carries a denormalized reporter name snapshot; both are
// returned because they can legitimately disagree.
func GetIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, err := issueStore().FetchByID(ctx, issueID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		return
	}

	reporter := map[string]interface{}{
		"userId": issue.ReporterID,
		"name":   issue.ReporterName,
	}
	if profile, err := citizenStore().FetchByUID(ctx, issue.ReporterID); err == nil {
		reporter["name"] = profile.Name
		reporter["email"] = profile.Email
		reporter["phone"] = profile.Phone
	}

	c.JSON(http.StatusOK, gin.H{
		"issue":    issue,
		"reporter": reporter,
	})
}

// GetIssueAnalytics returns the dashboard aggregates: status counts, the
// category breakdown, the resolution snapshot and the ten most recent
// issues. resolutionStats is null until at least one issue is Resolved.
func GetIssueAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	recent := issues
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"statusCounts":     stats.CountByStatus(issues),
		"issuesByCategory": stats.CategoryBreakdown(issues),
		"resolutionStats":  stats.Resolution(issues),
		"recentIssues":     recent,
	})
}

// UpdateIssueStatus changes an issue's status and optionally its assigned
// worker. Transitions are unconstrained: moving a Resolved issue back to
// Pending is allowed. updated_at is refreshed by the store adapter.
func UpdateIssueStatus(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status         string  `json:"status" binding:"required"`
		AssignedWorker *string `json:"assignedWorker,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = issueStore().UpdateStatus(ctx, issueID, models.IssueStatus(input.Status), input.AssignedWorker)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue updated successfully"})
}

// DeleteIssue removes an issue outright. Privileged operation.
func DeleteIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = issueStore().Delete(ctx, issueID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
