package database

import (
	"gorm.io/gorm"

	"github.com/aiedap/aiedap-backend/models"
)

type VersionRepo struct {
	db *gorm.DB
}

func NewVersionRepo(db *gorm.DB) *VersionRepo {
	return &VersionRepo{db}
}

// Add appends a version snapshot. Versions are immutable once created; this
// is the only write path the repo exposes.
func (r *VersionRepo) Add(version *models.Version) error {
	version.ID = 0
	return r.db.Create(version).Error
}

// FindByProject returns a project's version history, newest first.
func (r *VersionRepo) FindByProject(projectID uint) ([]models.Version, error) {
	versions := make([]models.Version, 0)
	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&versions).Error
	return versions, err
}
