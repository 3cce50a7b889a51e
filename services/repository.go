package services

import (
	"time"

	"github.com/bugtrack-simple/models"
)

// Repository interfaces consumed by the service layer. The concrete GORM
// implementations live in the repositories package; tests substitute the
// hand-written mocks under services/mocks.

// UserRepository provides user persistence
type UserRepository interface {
	FindByID(id string) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	CountByIDs(ids []string) (int64, error)
	Create(user models.User) (models.User, error)
}

// ProjectRepository provides project and membership persistence
type ProjectRepository interface {
	FindAll() ([]models.Project, error)
	FindByID(id string) (models.Project, error)
	Exists(id string) (bool, error)
	Create(project models.Project) (models.Project, error)
	Rename(id, name string) error
	AddMembers(projectID string, memberIDs []string) error
	Delete(id string) error
}

// BugRepository provides bug persistence
type BugRepository interface {
	FindByProjectID(projectID string) ([]models.Bug, error)
	FindByID(projectID, bugID string) (models.Bug, error)
	Create(bug models.Bug) (models.Bug, error)
	Update(bug models.Bug) (models.Bug, error)
	SetResolution(projectID, bugID string, resolved bool, actorID string, at time.Time) (int64, error)
	Delete(projectID, bugID string) error
}
