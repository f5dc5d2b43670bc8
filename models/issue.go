package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "Pothole"
	Garbage     IssueCategory = "Garbage"
	StreetLight IssueCategory = "Street Light"
	WaterLeak   IssueCategory = "Water Leak"
	RoadDamage  IssueCategory = "Road Damage"
	Other       IssueCategory = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Pending    IssueStatus = "Pending"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

// ValidCategory reports whether s is one of the known issue categories.
func ValidCategory(s string) bool {
	switch IssueCategory(s) {
	case Pothole, Garbage, StreetLight, WaterLeak, RoadDamage, Other:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known issue statuses.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Pending, InProgress, Resolved:
		return true
	}
	return false
}

// Issue represents a civic issue reported by a citizen. The document shape
// (snake_case fields) is owned by the citizen-facing client that creates it;
// this portal only ever writes status, assigned_worker and updated_at.
type Issue struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID     string             `bson:"user_id" json:"userId"`
	ImageURL       string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Category       IssueCategory      `bson:"category" json:"category"`
	Description    string             `bson:"description" json:"description"`
	Latitude       float64            `bson:"latitude" json:"latitude"`
	Longitude      float64            `bson:"longitude" json:"longitude"`
	Status         IssueStatus        `bson:"status" json:"status"`
	Upvotes        int                `bson:"upvotes" json:"upvotes"`
	AssignedWorker string             `bson:"assigned_worker,omitempty" json:"assignedWorker,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
	// ReporterName is a display-name snapshot taken when the report was
	// submitted. It can drift from the live citizen record and is never
	// reconciled here.
	ReporterName string `bson:"user_name" json:"userName"`
}

// ResolutionHours returns the issue's resolution duration in fractional
// hours. Negative values (updated_at before created_at) are returned as-is;
// the timestamps are not validated at write time.
func (i Issue) ResolutionHours() float64 {
	return i.UpdatedAt.Sub(i.CreatedAt).Hours()
}
