package models

import (
	"io"
	"time"
)

// ProcessingStatus is the server-side parsing state of an uploaded resume.
type ProcessingStatus string

const (
	ProcessingPending    ProcessingStatus = "pending"
	ProcessingProcessing ProcessingStatus = "processing"
	ProcessingCompleted  ProcessingStatus = "completed"
	ProcessingFailed     ProcessingStatus = "failed"
)

// PersonalInfo is the contact block extracted from a resume.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience is a single work entry extracted from a resume.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is a single education entry extracted from a resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExtractedData is the structured result of server-side resume parsing.
type ExtractedData struct {
	PersonalInfo *PersonalInfo `json:"personalInfo,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
}

// Resume is an uploaded resume together with its processing state.
type Resume struct {
	ID               string           `json:"id"`
	Filename         string           `json:"filename"`
	OriginalName     string           `json:"originalName"`
	FileSize         int64            `json:"fileSize"`
	MimeType         string           `json:"mimeType"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	ExtractedText    string           `json:"extractedText,omitempty"`
	ExtractedData    *ExtractedData   `json:"extractedData,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// UploadResponse is returned by POST /resumes/upload.
type UploadResponse struct {
	ResumeID string `json:"resumeId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Status   string `json:"status"`
}

// UploadForm is a multipart body: one file part plus optional plain fields.
type UploadForm struct {
	// Field is the multipart field name of the file part.
	Field    string
	FileName string
	Reader   io.Reader
	Fields   map[string]string
}
