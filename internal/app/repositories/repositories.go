package repositories

import (
	"github.com/yigit/envisys/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	CatalogRepository *CatalogRepository
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories over a loaded catalog
func NewRepositories(catalog *models.Catalog) *Repositories {
	return &Repositories{
		CatalogRepository: NewCatalogRepository(catalog),
		SessionRepository: NewSessionRepository(),
	}
}
