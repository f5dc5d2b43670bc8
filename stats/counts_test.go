package stats

import (
	"testing"

	"streetlens-admin/models"
)

func citizen(uid, name string) models.Citizen {
	return models.Citizen{UserID: uid, Name: name, Role: models.RoleCitizen}
}

func reportedIssue(uid string, status models.IssueStatus) models.Issue {
	return models.Issue{ReporterID: uid, Status: status, Category: models.Pothole}
}

func TestCitizenIssueCounts(t *testing.T) {
	citizens := []models.Citizen{
		citizen("u1", "Asha"),
		citizen("u2", "Bilal"),
		citizen("u3", "Chen"),
	}
	issues := []models.Issue{
		reportedIssue("u2", models.Resolved),
		reportedIssue("u2", models.Pending),
		reportedIssue("u2", models.InProgress),
		reportedIssue("u1", models.Pending),
	}

	rows := CitizenIssueCounts(citizens, issues)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// sorted by total desc; zero-issue citizen still present
	if rows[0].UserID != "u2" || rows[0].TotalIssues != 3 {
		t.Errorf("rows[0] = %s/%d, want u2/3", rows[0].UserID, rows[0].TotalIssues)
	}
	if rows[1].UserID != "u1" || rows[1].TotalIssues != 1 {
		t.Errorf("rows[1] = %s/%d, want u1/1", rows[1].UserID, rows[1].TotalIssues)
	}
	if rows[2].UserID != "u3" || rows[2].TotalIssues != 0 {
		t.Errorf("rows[2] = %s/%d, want u3/0", rows[2].UserID, rows[2].TotalIssues)
	}

	sum := 0
	for _, row := range rows {
		if row.TotalIssues != row.ResolvedIssues+row.PendingIssues+row.InProgressIssues {
			t.Errorf("citizen %s: total %d != resolved %d + pending %d + inProgress %d",
				row.UserID, row.TotalIssues, row.ResolvedIssues, row.PendingIssues, row.InProgressIssues)
		}
		sum += row.TotalIssues
	}
	if sum != len(issues) {
		t.Errorf("totals sum to %d, want %d", sum, len(issues))
	}
}

func TestCitizenIssueCountsStableOnTies(t *testing.T) {
	citizens := []models.Citizen{
		citizen("u1", "Asha"),
		citizen("u2", "Bilal"),
		citizen("u3", "Chen"),
	}
	issues := []models.Issue{
		reportedIssue("u1", models.Pending),
		reportedIssue("u2", models.Pending),
		reportedIssue("u3", models.Pending),
	}

	rows := CitizenIssueCounts(citizens, issues)
	for i, want := range []string{"u1", "u2", "u3"} {
		if rows[i].UserID != want {
			t.Errorf("rows[%d].UserID = %s, want %s (ties must keep input order)", i, rows[i].UserID, want)
		}
	}
}

func TestCountByStatus(t *testing.T) {
	issues := []models.Issue{
		reportedIssue("u1", models.Pending),
		reportedIssue("u1", models.Pending),
		reportedIssue("u2", models.InProgress),
		reportedIssue("u3", models.Resolved),
	}

	got := CountByStatus(issues)
	want := StatusCounts{Total: 4, Pending: 2, InProgress: 1, Resolved: 1}
	if got != want {
		t.Errorf("CountByStatus = %+v, want %+v", got, want)
	}

	if got := CountByStatus(nil); got != (StatusCounts{}) {
		t.Errorf("CountByStatus(nil) = %+v, want zero counts", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	issues := []models.Issue{
		{Category: models.Garbage, Status: models.Pending},
		{Category: models.Pothole, Status: models.Resolved},
		{Category: models.Pothole, Status: models.Pending},
		{Category: models.StreetLight, Status: models.InProgress},
	}

	got := CategoryBreakdown(issues)
	want := []CategoryCount{
		{Category: models.Pothole, Count: 2},
		{Category: models.Garbage, Count: 1},
		{Category: models.StreetLight, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CategoryBreakdown[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
