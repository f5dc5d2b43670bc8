package controllers

import (
	"context"
	"net/http"
	"time"

	"streetlens-admin/filters"
	"streetlens-admin/stats"
	"streetlens-admin/store"

	"github.com/gin-gonic/gin"
)

// GetAllCitizens returns the citizen directory with per-citizen issue
// counts, sorted by most issues first. The optional search query narrows by
// name, email or phone; counting happens before the narrowing so counts are
// always global.
func GetAllCitizens(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	citizens, err := citizenStore().FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve citizens"})
		return
	}

	issues, err := issueStore().FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	rows := stats.CitizenIssueCounts(citizens, issues)

	search := c.Query("search")
	matched := make([]stats.CitizenCounts, 0, len(rows))
	for _, row := range rows {
		if filters.MatchCitizen(row.Citizen, search) {
			matched = append(matched, row)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"citizens": matched,
		"total":    len(rows),
		"shown":    len(matched),
	})
}

// GetCitizen retrieves one citizen's profile together with every issue they
// have reported, newest first.
func GetCitizen(c *gin.Context) {
	uid := c.Param("uid")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	citizen, err := citizenStore().FetchByUID(ctx, uid)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Citizen not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve citizen"})
		return
	}

	issues, err := issueStore().FetchByReporter(ctx, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"citizen": citizen,
		"issues":  issues,
		"counts":  stats.CountByStatus(issues),
	})
}
