package database

import (
	"gorm.io/gorm"

	"github.com/aiedap/aiedap-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	versionRepo *VersionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		versionRepo: NewVersionRepo(db),
	}
}

// Migrate creates or updates the projects and versions tables, including the
// student_name, status and project_id indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Project{}, &models.Version{})
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) VersionRepo() *VersionRepo {
	return d.versionRepo
}
