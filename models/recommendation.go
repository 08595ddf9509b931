package models

import "time"

// Job is a job posting recommended to the user.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Skills       []string  `json:"skills"`
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	PostedDate   time.Time `json:"postedDate"`
	MatchScore   float64   `json:"matchScore"`
}

// Course is a learning resource recommended to the user.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	Instructor  string   `json:"instructor,omitempty"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Skills      []string `json:"skills"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	MatchScore  float64  `json:"matchScore"`
}
