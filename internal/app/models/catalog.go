package models

// Catalog is the full set of sample records the portal renders.
// It is loaded once at startup and never mutated.
type Catalog struct {
	Theses        []Thesis              `yaml:"theses"`
	Groups        []Group               `yaml:"groups"`
	Documents     []Document            `yaml:"documents"`
	Defenses      []Defense             `yaml:"defenses"`
	Notifications []Notification        `yaml:"notifications"`
	SharedDoc     SharedDoc             `yaml:"shared_doc"`
	Activity      []Activity            `yaml:"activity"`
	Stats         map[string][]StatCard `yaml:"stats"`
}
