package stats

import (
	"fmt"
	"math"
	"sort"

	"streetlens-admin/models"
)

const leaderboardSize = 5

// TimedIssue pairs an issue with its resolution duration in fractional hours.
type TimedIssue struct {
	Issue models.Issue `json:"issue"`
	Hours float64      `json:"hours"`
}

// CategoryAverage is the mean resolution time over the resolved issues of one
// category.
type CategoryAverage struct {
	Category models.IssueCategory `json:"category"`
	AvgHours float64              `json:"avgHours"`
	Count    int                  `json:"count"`
}

// WorkerRank is one leaderboard entry: a worker and how many resolved issues
// are assigned to them.
type WorkerRank struct {
	Worker string `json:"worker"`
	Count  int    `json:"count"`
}

// ResolutionSnapshot holds the derived resolution metrics for one in-memory
// collection of issues. It is plain data; rendering is the caller's problem.
type ResolutionSnapshot struct {
	ResolvedCount     int               `json:"resolvedCount"`
	AverageHours      float64           `json:"averageHours"`
	Fastest           TimedIssue        `json:"fastest"`
	Slowest           TimedIssue        `json:"slowest"`
	OldestUnresolved  *models.Issue     `json:"oldestUnresolved,omitempty"`
	CategoryAverages  []CategoryAverage `json:"categoryAverages"`
	WorkerLeaderboard []WorkerRank      `json:"workerLeaderboard"`
}

// Resolution computes the resolution metrics over issues. It returns nil when
// no issue is Resolved. The input is never mutated and no reference to it is
// retained; every call re-derives the snapshot from scratch.
//
// Durations are taken as-is: an issue whose updated_at precedes its
// created_at contributes a negative duration rather than being clamped or
// dropped, matching the absence of validation on the write side.
func Resolution(issues []models.Issue) *ResolutionSnapshot {
	var resolved []TimedIssue
	for _, i := range issues {
		if i.Status == models.Resolved {
			resolved = append(resolved, TimedIssue{Issue: i, Hours: i.ResolutionHours()})
		}
	}
	if len(resolved) == 0 {
		return nil
	}

	sum := 0.0
	fastest, slowest := resolved[0], resolved[0]
	for _, t := range resolved {
		sum += t.Hours
		// strict comparisons keep the first-encountered entry on ties
		if t.Hours < fastest.Hours {
			fastest = t
		}
		if t.Hours > slowest.Hours {
			slowest = t
		}
	}

	return &ResolutionSnapshot{
		ResolvedCount:     len(resolved),
		AverageHours:      sum / float64(len(resolved)),
		Fastest:           fastest,
		Slowest:           slowest,
		OldestUnresolved:  OldestUnresolved(issues),
		CategoryAverages:  categoryAverages(resolved),
		WorkerLeaderboard: workerLeaderboard(resolved),
	}
}

// OldestUnresolved returns the non-Resolved issue with the earliest
// created_at, or nil when every issue is Resolved. Ties keep the first
// encountered issue.
func OldestUnresolved(issues []models.Issue) *models.Issue {
	var oldest *models.Issue
	for _, i := range issues {
		if i.Status == models.Resolved {
			continue
		}
		if oldest == nil || i.CreatedAt.Before(oldest.CreatedAt) {
			tmp := i
			oldest = &tmp
		}
	}
	return oldest
}

func categoryAverages(resolved []TimedIssue) []CategoryAverage {
	type acc struct {
		sum   float64
		count int
	}
	byCat := make(map[models.IssueCategory]*acc)
	var order []models.IssueCategory
	for _, t := range resolved {
		a, ok := byCat[t.Issue.Category]
		if !ok {
			a = &acc{}
			byCat[t.Issue.Category] = a
			order = append(order, t.Issue.Category)
		}
		a.sum += t.Hours
		a.count++
	}

	out := make([]CategoryAverage, 0, len(order))
	for _, cat := range order {
		a := byCat[cat]
		out = append(out, CategoryAverage{
			Category: cat,
			AvgHours: a.sum / float64(a.count),
			Count:    a.count,
		})
	}
	// stable sort keeps first-seen order among equal averages
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgHours > out[j].AvgHours
	})
	return out
}

func workerLeaderboard(resolved []TimedIssue) []WorkerRank {
	counts := make(map[string]int)
	var order []string
	for _, t := range resolved {
		w := t.Issue.AssignedWorker
		if w == "" {
			continue
		}
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	out := make([]WorkerRank, 0, len(order))
	for _, w := range order {
		out = append(out, WorkerRank{Worker: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > leaderboardSize {
		out = out[:leaderboardSize]
	}
	return out
}

// FormatDuration renders a duration in hours for display: whole hours below
// one day ("7h"), days with one decimal from there up ("2.5d").
func FormatDuration(hours float64) string {
	if hours < 24 {
		return fmt.Sprintf("%dh", int(math.Round(hours)))
	}
	return fmt.Sprintf("%.1fd", hours/24)
}
