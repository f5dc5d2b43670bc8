package stats

import (
	"sort"

	"streetlens-admin/models"
)

// CitizenCounts is a directory row: a citizen plus how many issues they have
// reported, broken down by state.
type CitizenCounts struct {
	models.Citizen
	TotalIssues      int `json:"totalIssues"`
	ResolvedIssues   int `json:"resolvedIssues"`
	PendingIssues    int `json:"pendingIssues"`
	InProgressIssues int `json:"inProgressIssues"`
}

// CitizenIssueCounts joins every citizen with the issues whose reporter id
// matches, sorted by total count descending. The sort is stable, so citizens
// with equal totals keep their input order, and citizens with no issues are
// included with zero counts.
func CitizenIssueCounts(citizens []models.Citizen, issues []models.Issue) []CitizenCounts {
	type tally struct {
		total, resolved, pending, inProgress int
	}
	byReporter := make(map[string]*tally)
	for _, i := range issues {
		t, ok := byReporter[i.ReporterID]
		if !ok {
			t = &tally{}
			byReporter[i.ReporterID] = t
		}
		t.total++
		switch i.Status {
		case models.Resolved:
			t.resolved++
		case models.Pending:
			t.pending++
		case models.InProgress:
			t.inProgress++
		}
	}

	rows := make([]CitizenCounts, 0, len(citizens))
	for _, c := range citizens {
		row := CitizenCounts{Citizen: c}
		if t, ok := byReporter[c.UserID]; ok {
			row.TotalIssues = t.total
			row.ResolvedIssues = t.resolved
			row.PendingIssues = t.pending
			row.InProgressIssues = t.inProgress
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalIssues > rows[j].TotalIssues
	})
	return rows
}
