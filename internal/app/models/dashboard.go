package models

import "time"

// StatCard is one dashboard counter
type StatCard struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Activity is a recent activity feed entry
type Activity struct {
	Type    string        `yaml:"type" json:"type"`
	Title   string        `yaml:"title" json:"title"`
	GroupID string        `yaml:"group_id" json:"groupId"`
	Ago     time.Duration `yaml:"ago" json:"-"`
}
