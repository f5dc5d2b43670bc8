package controllers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"streetlens-admin/models"
	"streetlens-admin/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const printDateLayout = "02 Jan 2006, 15:04"

var statusBadgeStyles = map[models.IssueStatus]template.CSS{
	models.Pending:    "background:#fef3c7;color:#92400e",
	models.InProgress: "background:#dbeafe;color:#1e40af",
	models.Resolved:   "background:#d1fae5;color:#065f46",
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html><head>
<meta charset="utf-8"/>
<title>StreetLens Issue Report – {{.IssueID}}</title>
<style>
  body{margin:0;padding:32px;font-family:Arial,sans-serif;color:#0f172a;font-size:13px}
  .header{display:flex;justify-content:space-between;align-items:flex-start;border-bottom:2px solid #1d4ed8;padding-bottom:12px;margin-bottom:20px}
  .title{font-size:22px;font-weight:800;color:#1d4ed8;margin:0}
  .subtitle{font-size:11px;color:#64748b;margin:2px 0 0}
  .badge{padding:4px 12px;border-radius:999px;font-size:11px;font-weight:700;text-transform:uppercase;{{.BadgeStyle}}}
  .row{display:flex;gap:24px;margin-bottom:20px;align-items:flex-start}
  .photo{width:260px;height:180px;object-fit:cover;border-radius:8px;border:1px solid #e2e8f0}
  .qr-wrap{text-align:center}
  .qr-label{font-size:10px;color:#94a3b8;margin-top:4px}
  table{width:100%;border-collapse:collapse;margin-bottom:24px}
  td{padding:7px 10px;border:1px solid #e2e8f0}
  tr:nth-child(odd) td{background:#f8fafc}
  td:first-child{font-weight:600;color:#475569;width:160px}
  .footer{font-size:10px;color:#94a3b8;text-align:center;border-top:1px solid #e2e8f0;padding-top:10px}
</style>
</head><body>
<div class="header">
  <div>
    <p class="title">StreetLens</p>
    <p class="subtitle">Municipal Civic Issue Report</p>
  </div>
  <span class="badge">{{.Status}}</span>
</div>
<div class="row">
  {{if .ImageURL}}<img src="{{.ImageURL}}" class="photo" alt="Issue photo"/>{{end}}
  <div class="qr-wrap">
    <img src="{{.QRURL}}" width="120" height="120" alt="QR"/>
    <p class="qr-label">Scan for GPS location</p>
  </div>
</div>
<table><tbody>
  <tr><td>Issue ID</td><td>{{.IssueID}}</td></tr>
  <tr><td>Category</td><td>{{.Category}}</td></tr>
  <tr><td>Description</td><td>{{.Description}}</td></tr>
  <tr><td>Reporter</td><td>{{.Reporter}}</td></tr>
  <tr><td>Reported On</td><td>{{.CreatedAt}}</td></tr>
  <tr><td>Last Updated</td><td>{{.UpdatedAt}}</td></tr>
  <tr><td>GPS Coordinates</td><td>{{.Coordinates}}</td></tr>
  <tr><td>Maps Link</td><td>{{.MapsURL}}</td></tr>
  <tr><td>Assigned Worker</td><td>{{.Worker}}</td></tr>
  <tr><td>Upvotes</td><td>{{.Upvotes}}</td></tr>
  <tr><td>Status</td><td>{{.Status}}</td></tr>
</tbody></table>
<p class="footer">Generated by StreetLens Admin Portal &middot; {{.GeneratedAt}}</p>
<script>window.onload=function(){window.print();window.onafterprint=function(){window.close()}}</script>
</body></html>`))

type printData struct {
	IssueID     string
	Status      models.IssueStatus
	BadgeStyle  template.CSS
	ImageURL    string
	QRURL       string
	Category    models.IssueCategory
	Description string
	Reporter    string
	CreatedAt   string
	UpdatedAt   string
	Coordinates string
	MapsURL     string
	Worker      string
	Upvotes     int
	GeneratedAt string
}

// PrintIssue renders a printable report for one issue: field table, status
// badge, Google Maps link and a QR code encoding that link.
func PrintIssue(c *gin.Context) {
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

	mapsURL := fmt.Sprintf("https://www.google.com/maps?q=%f,%f", issue.Latitude, issue.Longitude)
	qrURL := "https://api.qrserver.com/v1/create-qr-code/?size=120x120&data=" + url.QueryEscape(mapsURL)

	data := printData{
		IssueID:     issue.ID.Hex(),
		Status:      issue.Status,
		BadgeStyle:  statusBadgeStyles[issue.Status],
		ImageURL:    issue.ImageURL,
		QRURL:       qrURL,
		Category:    issue.Category,
		Description: orDash(issue.Description),
		Reporter:    orDash(issue.ReporterName),
		CreatedAt:   issue.CreatedAt.Format(printDateLayout),
		UpdatedAt:   issue.UpdatedAt.Format(printDateLayout),
		Coordinates: fmt.Sprintf("%.6f, %.6f", issue.Latitude, issue.Longitude),
		MapsURL:     mapsURL,
		Worker:      issue.AssignedWorker,
		Upvotes:     issue.Upvotes,
		GeneratedAt: time.Now().Format(printDateLayout),
	}
	if data.BadgeStyle == "" {
		data.BadgeStyle = statusBadgeStyles[models.Pending]
	}
	if data.Worker == "" {
		data.Worker = "Not assigned"
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := printTemplate.Execute(c.Writer, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
