package models

import "time"

// Notification is a sample notification feed entry
type Notification struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Message  string `yaml:"message" json:"message"`
	Unread   bool   `yaml:"unread" json:"unread"`
	// Link is the page the notification points at
	Link      string        `yaml:"link" json:"link"`
	PostedAgo time.Duration `yaml:"posted_ago" json:"-"`
}
