// Package filters narrows in-memory record collections for the admin views.
// All filters are pure predicates combined with AND; filtering is stable and
// never reorders the input.
package filters

import (
	"strings"

	"streetlens-admin/models"
)

// All is the sentinel value for a status or category filter that matches
// everything.
const All = "All"

// IssueFilter is the active filter set of the issues view. Zero value and
// "All" both mean "no constraint"; an empty search matches everything.
type IssueFilter struct {
	Status   string
	Category string
	Search   string
}

// MatchIssue reports whether the issue satisfies every active filter.
// The free-text query matches case-insensitively against description,
// reporter name, category and the issue id.
func MatchIssue(i models.Issue, f IssueFilter) bool {
	if f.Status != "" && f.Status != All && string(i.Status) != f.Status {
		return false
	}
	if f.Category != "" && f.Category != All && string(i.Category) != f.Category {
		return false
	}
	q := strings.ToLower(f.Search)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Description), q) ||
		strings.Contains(strings.ToLower(i.ReporterName), q) ||
		strings.Contains(strings.ToLower(string(i.Category)), q) ||
		strings.Contains(strings.ToLower(i.ID.Hex()), q)
}

// Issues returns the issues matching f, preserving input order.
func Issues(issues []models.Issue, f IssueFilter) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for _, i := range issues {
		if MatchIssue(i, f) {
			out = append(out, i)
		}
	}
	return out
}

// MatchCitizen reports whether the citizen matches the free-text query over
// name, email and phone. An empty query matches everything.
func MatchCitizen(c models.Citizen, search string) bool {
	q := strings.ToLower(search)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Phone), q)
}

// Citizens returns the citizens matching the query, preserving input order.
func Citizens(citizens []models.Citizen, search string) []models.Citizen {
	out := make([]models.Citizen, 0, len(citizens))
	for _, c := range citizens {
		if MatchCitizen(c, search) {
			out = append(out, c)
		}
	}
	return out
}
