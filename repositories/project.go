package repositories

import (
	"errors"
	"time"

	"github.com/bugtrack-simple/database"
	"github.com/bugtrack-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects with their creator and members
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Preload("CreatedBy").
		Preload("Members.Member").
		Order("created_at ASC").
		Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID with creator and members
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("CreatedBy").
		Preload("Members.Member").
		First(&project, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, models.NewNotFoundError("project not found")
	}
	return project, result.Error
}

// Exists checks whether a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new project along with its initial memberships
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	if err := database.DB.Create(&project).Error; err != nil {
		return project, err
	}
	return r.FindByID(project.ID)
}

// Rename updates the project name and bumps the updated timestamp
func (r *ProjectRepository) Rename(id, name string) error {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"updated_at": time.Now(),
	})
	return result.Error
}

// AddMembers merges the given user ids into the project membership set.
// Existing (project, user) pairs are left untouched.
func (r *ProjectRepository) AddMembers(projectID string, memberIDs []string) error {
	members := make([]models.ProjectMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, models.ProjectMember{ProjectID: projectID, MemberID: id})
	}
	if len(members) == 0 {
		return nil
	}
	result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&members)
	return result.Error
}

// Delete removes a project together with its bugs and memberships
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Bug{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
