package services

import (
	"strings"
	"time"

	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
)

// BugService handles business logic for the bug lifecycle
type BugService struct {
	projectRepo ProjectRepository
	bugRepo     BugRepository
	now         func() time.Time
}

// NewBugService creates a new bug service instance
func NewBugService(projectRepo ProjectRepository, bugRepo BugRepository) *BugService {
	return &BugService{projectRepo: projectRepo, bugRepo: bugRepo, now: time.Now}
}

// ListByProject retrieves the bugs of a project, oldest first
func (s *BugService) ListByProject(projectID string) ([]models.Bug, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("project not found")
	}
	return s.bugRepo.FindByProjectID(projectID)
}

// Create files a new bug in the Open state. Developers cannot file bugs.
func (s *BugService) Create(projectID string, req dto.BugRequest, actor models.User) (models.Bug, error) {
	if !Allows(actor.Role, ActionCreateBug) {
		return models.Bug{}, models.NewForbiddenError("developers cannot create bugs")
	}

	title, priority, err := validateBugPayload(req)
	if err != nil {
		return models.Bug{}, err
	}

	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return models.Bug{}, err
	}
	if !exists {
		return models.Bug{}, models.NewNotFoundError("project not found")
	}

	bug := models.Bug{
		ProjectID:   projectID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		IsResolved:  false,
		CreatedByID: actor.ID,
	}
	return s.bugRepo.Create(bug)
}

// Edit updates title, description and priority in either resolution state.
// The edit audit fields are stamped even when the content is unchanged.
func (s *BugService) Edit(projectID, bugID string, req dto.BugRequest, actor models.User) (models.Bug, error) {
	if !Allows(actor.Role, ActionEditBug) {
		return models.Bug{}, models.NewForbiddenError("this role cannot edit bugs")
	}

	title, priority, err := validateBugPayload(req)
	if err != nil {
		return models.Bug{}, err
	}

	bug, err := s.bugRepo.FindByID(projectID, bugID)
	if err != nil {
		return models.Bug{}, err
	}

	now := s.now()
	bug.Title = title
	bug.Description = req.Description
	bug.Priority = priority
	bug.UpdatedByID = &actor.ID
	bug.UpdatedAt = &now
	return s.bugRepo.Update(bug)
}

// Close transitions an open bug to closed, recording the actor and time.
func (s *BugService) Close(projectID, bugID string, actor models.User) (models.Bug, error) {
	return s.setResolution(projectID, bugID, true, actor)
}

// Reopen transitions a closed bug back to open, recording the actor and time.
func (s *BugService) Reopen(projectID, bugID string, actor models.User) (models.Bug, error) {
	return s.setResolution(projectID, bugID, false, actor)
}

func (s *BugService) setResolution(projectID, bugID string, resolved bool, actor models.User) (models.Bug, error) {
	if !Allows(actor.Role, ActionResolveBug) {
		return models.Bug{}, models.NewForbiddenError("this role cannot close or reopen bugs")
	}

	rows, err := s.bugRepo.SetResolution(projectID, bugID, resolved, actor.ID, s.now())
	if err != nil {
		return models.Bug{}, err
	}
	if rows == 0 {
		// Nothing changed: either missing or already in the target state.
		if _, err := s.bugRepo.FindByID(projectID, bugID); err != nil {
			return models.Bug{}, err
		}
		if resolved {
			return models.Bug{}, models.NewConflictError("bug is already closed")
		}
		return models.Bug{}, models.NewConflictError("bug is already open")
	}
	return s.bugRepo.FindByID(projectID, bugID)
}

// Delete removes a bug permanently. Any authenticated member may delete.
func (s *BugService) Delete(projectID, bugID string, actor models.User) error {
	if !Allows(actor.Role, ActionDeleteBug) {
		return models.NewForbiddenError("this role cannot delete bugs")
	}
	if _, err := s.bugRepo.FindByID(projectID, bugID); err != nil {
		return err
	}
	return s.bugRepo.Delete(projectID, bugID)
}

// validateBugPayload normalizes the title and priority shared by create and
// edit. An empty priority defaults to low.
func validateBugPayload(req dto.BugRequest) (string, models.Priority, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > models.TitleMaxLen {
		return "", "", models.NewValidationError("bug title must be 1-60 characters")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityLow
	}
	if !models.ValidPriority(priority) {
		return "", "", models.NewValidationError("priority must be low, medium or high")
	}
	return title, priority, nil
}
