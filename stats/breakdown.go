package stats

import (
	"sort"

	"streetlens-admin/models"
)

// StatusCounts is the dashboard headline: how many issues sit in each
// lifecycle state.
type StatusCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// CountByStatus tallies issues per lifecycle state in a single pass.
func CountByStatus(issues []models.Issue) StatusCounts {
	c := StatusCounts{Total: len(issues)}
	for _, i := range issues {
		switch i.Status {
		case models.Pending:
			c.Pending++
		case models.InProgress:
			c.InProgress++
		case models.Resolved:
			c.Resolved++
		}
	}
	return c
}

// CategoryCount is one bar of the category breakdown.
type CategoryCount struct {
	Category models.IssueCategory `json:"category"`
	Count    int                  `json:"count"`
}

// CategoryBreakdown counts all issues (regardless of status) per category,
// ordered by descending count; ties keep first-seen category order.
func CategoryBreakdown(issues []models.Issue) []CategoryCount {
	counts := make(map[models.IssueCategory]int)
	var order []models.IssueCategory
	for _, i := range issues {
		if _, ok := counts[i.Category]; !ok {
			order = append(order, i.Category)
		}
		counts[i.Category]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
