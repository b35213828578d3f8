package models

// Member is a student in a thesis group
type Member struct {
	Name          string `yaml:"name" json:"name"`
	Avatar        string `yaml:"avatar" json:"avatar"`
	Role          string `yaml:"role" json:"role,omitempty"`
	Email         string `yaml:"email" json:"email,omitempty"`
	Contributions int    `yaml:"contributions" json:"contributions"`
}

// Faculty is an adviser or panel member attached to a group
type Faculty struct {
	Name           string `yaml:"name" json:"name"`
	Email          string `yaml:"email" json:"email,omitempty"`
	Specialization string `yaml:"specialization" json:"specialization,omitempty"`
}

// Group is a sample thesis group record
type Group struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Status   string    `yaml:"status" json:"status"`
	ThesisID string    `yaml:"thesis_id" json:"thesisId"`
	Progress int       `yaml:"progress" json:"progress"`
	Members  []Member  `yaml:"members" json:"members"`
	Adviser  Faculty   `yaml:"adviser" json:"adviser"`
	Panel    []Faculty `yaml:"panel" json:"panel"`
}
