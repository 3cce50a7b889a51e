package repositories

import (
	"errors"
	"time"

	"github.com/bugtrack-simple/database"
	"github.com/bugtrack-simple/models"
	"gorm.io/gorm"
)

// BugRepository handles database operations for bugs
type BugRepository struct{}

// NewBugRepository creates a new bug repository instance
func NewBugRepository() *BugRepository {
	return &BugRepository{}
}

func preloadBugUsers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Preload("ClosedBy").
		Preload("ReopenedBy")
}

// FindByProjectID retrieves the bugs of a project, oldest first
func (r *BugRepository) FindByProjectID(projectID string) ([]models.Bug, error) {
	var bugs []models.Bug
	result := preloadBugUsers(database.DB).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&bugs)
	return bugs, result.Error
}

// FindByID retrieves a bug scoped to its project
func (r *BugRepository) FindByID(projectID, bugID string) (models.Bug, error) {
	var bug models.Bug
	result := preloadBugUsers(database.DB).
		First(&bug, "id = ? AND project_id = ?", bugID, projectID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return bug, models.NewNotFoundError("bug not found")
	}
	return bug, result.Error
}

// Create inserts a new bug into the database
func (r *BugRepository) Create(bug models.Bug) (models.Bug, error) {
	if err := database.DB.Create(&bug).Error; err != nil {
		return bug, err
	}
	return r.FindByID(bug.ProjectID, bug.ID)
}

// Update persists title, description, priority and the edit audit fields
func (r *BugRepository) Update(bug models.Bug) (models.Bug, error) {
	result := database.DB.Model(&models.Bug{}).Where("id = ?", bug.ID).Updates(map[string]interface{}{
		"title":         bug.Title,
		"description":   bug.Description,
		"priority":      bug.Priority,
		"updated_by_id": bug.UpdatedByID,
		"updated_at":    bug.UpdatedAt,
	})
	if result.Error != nil {
		return bug, result.Error
	}
	return r.FindByID(bug.ProjectID, bug.ID)
}

// SetResolution flips is_resolved with a conditional update so that
// concurrent transitions cannot both win. Returns the number of rows
// changed; zero means the bug was missing or already in the target state.
func (r *BugRepository) SetResolution(projectID, bugID string, resolved bool, actorID string, at time.Time) (int64, error) {
	updates := map[string]interface{}{"is_resolved": resolved}
	if resolved {
		updates["closed_by_id"] = actorID
		updates["closed_at"] = at
	} else {
		updates["reopened_by_id"] = actorID
		updates["reopened_at"] = at
	}
	result := database.DB.Model(&models.Bug{}).
		Where("id = ? AND project_id = ? AND is_resolved = ?", bugID, projectID, !resolved).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a bug permanently
func (r *BugRepository) Delete(projectID, bugID string) error {
	return database.DB.Delete(&models.Bug{}, "id = ? AND project_id = ?", bugID, projectID).Error
}
