package models

// Defense is a scheduled defense or review session
type Defense struct {
	ID       string   `yaml:"id" json:"id"`
	GroupID  string   `yaml:"group_id" json:"groupId"`
	Date     string   `yaml:"date" json:"date"`
	Time     string   `yaml:"time" json:"time"`
	Location string   `yaml:"location" json:"location"`
	Adviser  string   `yaml:"adviser" json:"adviser"`
	Panel    []string `yaml:"panel" json:"panel"`
	Type     string   `yaml:"type" json:"type"`
	Status   string   `yaml:"status" json:"status"`
}
