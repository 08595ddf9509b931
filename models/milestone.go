package models

import "time"

// MilestoneType classifies a career timeline entry.
type MilestoneType string

const (
	MilestoneEducation     MilestoneType = "education"
	MilestoneJob           MilestoneType = "job"
	MilestoneCertification MilestoneType = "certification"
	MilestoneAchievement   MilestoneType = "achievement"
	MilestoneProject       MilestoneType = "project"
)

// ExtractedFrom links a milestone to the resume it was derived from.
type ExtractedFrom struct {
	ResumeID   string  `json:"resumeId"`
	Confidence float64 `json:"confidence"`
}

// Milestone is a single entry of the derived career timeline.
type Milestone struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          MilestoneType  `json:"type"`
	Company       string         `json:"company,omitempty"`
	Location      string         `json:"location,omitempty"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       *time.Time     `json:"endDate,omitempty"`
	Current       bool           `json:"current,omitempty"`
	Skills        []string       `json:"skills,omitempty"`
	Technologies  []string       `json:"technologies,omitempty"`
	Achievements  []string       `json:"achievements,omitempty"`
	URL           string         `json:"url,omitempty"`
	ExtractedFrom *ExtractedFrom `json:"extractedFrom,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// MilestoneFilter narrows GET /timelines/milestones. Zero fields are omitted.
type MilestoneFilter struct {
	Type  MilestoneType
	Limit int
	Page  int
}

// MilestonePage is the paged list returned by the timeline endpoint.
type MilestonePage struct {
	Milestones []Milestone `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
