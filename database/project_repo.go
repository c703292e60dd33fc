package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aiedap/aiedap-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Add inserts a new project. The id is assigned by the database and the
// status always starts at pending, whatever the caller set.
func (r *ProjectRepo) Add(project *models.Project) error {
	project.ID = 0
	project.Status = models.StatusPending
	return r.db.Create(project).Error
}

// FindByID returns a project by its id, or (nil, nil) when no row matches.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPending returns all projects awaiting review, newest first.
func (r *ProjectRepo) FindPending() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindAll returns all projects newest first, optionally filtered by an exact
// student name match.
func (r *ProjectRepo) FindAll(studentName string) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	query := r.db.Order("created_at DESC")
	if studentName != "" {
		query = query.Where("student_name = ?", studentName)
	}
	err := query.Find(&projects).Error
	return projects, err
}

// Update applies only the fields provided in upd and refreshes updated_at.
// Returns (nil, nil) when the project does not exist.
func (r *ProjectRepo) Update(id uint, upd models.ProjectUpdate) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil || project == nil {
		return project, err
	}
	upd.Apply(project)
	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Approve sets the project approved, storing the generated content when
// provided. No guard against re-approval: approve applies whatever the
// current status is.
func (r *ProjectRepo) Approve(id uint, htmlContent *string) (*models.Project, error) {
	status := models.StatusApproved
	return r.Update(id, models.ProjectUpdate{Status: &status, HTMLContent: htmlContent})
}

// Reject sets the project rejected, storing the reason when provided.
func (r *ProjectRepo) Reject(id uint, rejectionReason *string) (*models.Project, error) {
	status := models.StatusRejected
	return r.Update(id, models.ProjectUpdate{Status: &status, RejectionReason: rejectionReason})
}

// Delete removes a project and all of its versions in one transaction.
// Versions go first; referential integrity is maintained here, not by a
// cascade constraint. Deleting an absent project is a no-op.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Version{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// DistinctStudents returns the sorted distinct student names across all
// projects.
func (r *ProjectRepo) DistinctStudents() ([]string, error) {
	students := make([]string, 0)
	err := r.db.Model(&models.Project{}).
		Distinct("student_name").
		Order("student_name").
		Pluck("student_name", &students).Error
	return students, err
}
