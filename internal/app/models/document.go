package models

import "time"

// Document is a sample file in the document manager
type Document struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Type        string        `yaml:"type" json:"type"`
	Version     string        `yaml:"version" json:"version"`
	Owner       string        `yaml:"owner" json:"owner"`
	GroupID     string        `yaml:"group_id" json:"groupId"`
	Size        string        `yaml:"size" json:"size"`
	Permissions string        `yaml:"permissions" json:"permissions"`
	Status      string        `yaml:"status" json:"status"`
	ModifiedAgo time.Duration `yaml:"modified_ago" json:"-"`
}

// DocRevision is one entry in the collaborative document history
type DocRevision struct {
	Version string `yaml:"version" json:"version"`
	Author  string `yaml:"author" json:"author"`
	Date    string `yaml:"date" json:"date"`
	Changes string `yaml:"changes" json:"changes"`
}

// DocComment is a reviewer comment on the collaborative document
type DocComment struct {
	Author    string        `yaml:"author" json:"author"`
	Role      string        `yaml:"role" json:"role"`
	Text      string        `yaml:"text" json:"text"`
	Resolved  bool          `yaml:"resolved" json:"resolved"`
	PostedAgo time.Duration `yaml:"posted_ago" json:"-"`
}

// SharedDoc is the embedded collaborative document sample
type SharedDoc struct {
	Title    string        `yaml:"title" json:"title"`
	Version  string        `yaml:"version" json:"version"`
	SavedAgo time.Duration `yaml:"saved_ago" json:"-"`
	History  []DocRevision `yaml:"history" json:"history"`
	Comments []DocComment  `yaml:"comments" json:"comments"`
	Editors  []string      `yaml:"editors" json:"editors"`
}
