package models

import "time"

// ThesisStatus is the review state shown on a thesis card
type ThesisStatus string

const (
	ThesisDraft       ThesisStatus = "Draft"
	ThesisSubmitted   ThesisStatus = "Submitted"
	ThesisUnderReview ThesisStatus = "Under Review"
	ThesisApproved    ThesisStatus = "Approved"
	ThesisRejected    ThesisStatus = "Rejected"
)

// Thesis is a sample thesis record
type Thesis struct {
	ID         string        `yaml:"id" json:"id"`
	Title      string        `yaml:"title" json:"title"`
	Abstract   string        `yaml:"abstract" json:"abstract,omitempty"`
	Keywords   []string      `yaml:"keywords" json:"keywords,omitempty"`
	GroupID    string        `yaml:"group_id" json:"groupId"`
	Adviser    string        `yaml:"adviser" json:"adviser"`
	Status     ThesisStatus  `yaml:"status" json:"status"`
	Progress   int           `yaml:"progress" json:"progress"`
	UpdatedAgo time.Duration `yaml:"updated_ago" json:"-"`
}
