package models

import "encoding/json"

// DashboardStats is the summary block of the career report.
type DashboardStats struct {
	TotalMilestones      int     `json:"totalMilestones"`
	TotalRecommendations int     `json:"totalRecommendations"`
	ResumesUploaded      int     `json:"resumesUploaded"`
	OverallScore         float64 `json:"overallScore"`
	ProfileCompleteness  float64 `json:"profileCompleteness"`
}

// CareerReport is returned by POST /insights/report. Sections the client only
// displays verbatim are kept as raw JSON.
type CareerReport struct {
	GeneratedAt        string            `json:"generatedAt"`
	UserID             string            `json:"userId"`
	Summary            *DashboardStats   `json:"summary,omitempty"`
	Insights           []json.RawMessage `json:"insights,omitempty"`
	TopRecommendations []json.RawMessage `json:"topRecommendations,omitempty"`
	CareerTimeline     []json.RawMessage `json:"careerTimeline,omitempty"`
	Analytics          json.RawMessage   `json:"analytics,omitempty"`
}

// ResumeParseRequest is the body of POST /resumes/ai-parse.
type ResumeParseRequest struct {
	Text string `json:"text"`
}
