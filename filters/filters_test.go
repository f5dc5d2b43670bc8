package filters

import (
	"testing"

	"streetlens-admin/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleIssues() []models.Issue {
	return []models.Issue{
		{
			ID:           primitive.NewObjectID(),
			Description:  "Deep pothole near the school gate",
			Category:     models.Pothole,
			Status:       models.Pending,
			ReporterName: "Asha Verma",
		},
		{
			ID:           primitive.NewObjectID(),
			Description:  "Overflowing garbage bins",
			Category:     models.Garbage,
			Status:       models.Resolved,
			ReporterName: "Bilal Khan",
		},
		{
			ID:           primitive.NewObjectID(),
			Description:  "Street light flickering all night",
			Category:     models.StreetLight,
			Status:       models.InProgress,
			ReporterName: "Chen Wei",
		},
		{
			ID:           primitive.NewObjectID(),
			Description:  "Another pothole on main road",
			Category:     models.Pothole,
			Status:       models.Resolved,
			ReporterName: "Asha Verma",
		},
	}
}

func TestIssuesStatusFilter(t *testing.T) {
	issues := sampleIssues()
	got := Issues(issues, IssueFilter{Status: "Resolved", Category: All})

	if len(got) != 2 {
		t.Fatalf("got %d issues, want 2", len(got))
	}
	// original order preserved among matches
	if got[0].Description != issues[1].Description || got[1].Description != issues[3].Description {
		t.Errorf("matches out of order: %q, %q", got[0].Description, got[1].Description)
	}
	for _, i := range got {
		if i.Status != models.Resolved {
			t.Errorf("issue %q has status %q, want Resolved", i.Description, i.Status)
		}
	}
}

func TestIssuesAllSentinelIsNoOp(t *testing.T) {
	issues := sampleIssues()

	tests := []struct {
		name   string
		filter IssueFilter
	}{
		{name: "explicit All", filter: IssueFilter{Status: All, Category: All, Search: ""}},
		{name: "zero value", filter: IssueFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Issues(issues, tt.filter)
			if len(got) != len(issues) {
				t.Fatalf("got %d issues, want %d", len(got), len(issues))
			}
			for i := range issues {
				if got[i].ID != issues[i].ID {
					t.Errorf("order changed at %d", i)
				}
			}
		})
	}
}

func TestIssuesFiltersCompose(t *testing.T) {
	issues := sampleIssues()
	got := Issues(issues, IssueFilter{Status: "Resolved", Category: "Pothole", Search: "main road"})

	if len(got) != 1 {
		t.Fatalf("got %d issues, want 1", len(got))
	}
	if got[0].Description != "Another pothole on main road" {
		t.Errorf("got %q", got[0].Description)
	}
}

func TestIssuesSearchFields(t *testing.T) {
	issues := sampleIssues()

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "description, case-insensitive", search: "GARBAGE BINS", want: 1},
		{name: "reporter name", search: "asha", want: 2},
		{name: "category", search: "street light", want: 1},
		{name: "issue id", search: issues[2].ID.Hex(), want: 1},
		{name: "no match", search: "flooded basement", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Issues(issues, IssueFilter{Search: tt.search})
			if len(got) != tt.want {
				t.Errorf("search %q matched %d issues, want %d", tt.search, len(got), tt.want)
			}
		})
	}
}

func TestIssuesFilterIdempotent(t *testing.T) {
	issues := sampleIssues()
	filter := IssueFilter{Status: "Resolved", Search: "pothole"}

	once := Issues(issues, filter)
	twice := Issues(once, filter)

	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second application reordered at %d", i)
		}
	}
}

func TestCitizensSearch(t *testing.T) {
	citizens := []models.Citizen{
		{UserID: "u1", Name: "Asha Verma", Email: "asha@example.com", Phone: "98765"},
		{UserID: "u2", Name: "Bilal Khan", Email: "bilal@example.com", Phone: "91234"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty query matches all", search: "", want: []string{"u1", "u2"}},
		{name: "by name", search: "verma", want: []string{"u1"}},
		{name: "by email", search: "BILAL@", want: []string{"u2"}},
		{name: "by phone", search: "9123", want: []string{"u2"}},
		{name: "no match", search: "dana", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Citizens(citizens, tt.search)
			if len(got) != len(tt.want) {
				t.Fatalf("matched %d citizens, want %d", len(got), len(tt.want))
			}
			for i, uid := range tt.want {
				if got[i].UserID != uid {
					t.Errorf("match %d = %s, want %s", i, got[i].UserID, uid)
				}
			}
		})
	}
}
