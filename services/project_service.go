package services

import (
	"strings"

	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo ProjectRepository
	userRepo    UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectRepository, userRepo UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

// List retrieves all projects. Every authenticated user sees every project.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// Create makes a new project owned by the actor. Managers only. The actor
// becomes the first member; extra member ids are merged in.
func (s *ProjectService) Create(req dto.CreateProjectRequest, actor models.User) (models.Project, error) {
	if !Allows(actor.Role, ActionCreateProject) {
		return models.Project{}, models.NewForbiddenError("only managers can create projects")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > models.TitleMaxLen {
		return models.Project{}, models.NewValidationError("project name must be 1-60 characters")
	}

	memberIDs := dedupeIDs(req.Members, actor.ID)
	if err := s.checkMembersExist(memberIDs); err != nil {
		return models.Project{}, err
	}

	members := []models.ProjectMember{{MemberID: actor.ID}}
	for _, id := range memberIDs {
		members = append(members, models.ProjectMember{MemberID: id})
	}

	project := models.Project{
		Name:        name,
		CreatedByID: actor.ID,
		Members:     members,
	}
	return s.projectRepo.Create(project)
}

// Update renames the project and/or merges new members. Permitted for the
// project creator or any team leader.
func (s *ProjectService) Update(projectID string, req dto.UpdateProjectRequest, actor models.User) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !CanManageProject(project, actor) {
		return models.Project{}, models.NewForbiddenError("only the project creator or a team leader can modify a project")
	}

	// Validate the whole payload before touching storage so a bad member
	// id cannot leave a rename behind.
	name := strings.TrimSpace(req.Name)
	if name == "" && len(req.Members) == 0 {
		return models.Project{}, models.NewValidationError("nothing to update")
	}
	if name != "" && len(name) > models.TitleMaxLen {
		return models.Project{}, models.NewValidationError("project name must be 1-60 characters")
	}
	memberIDs := dedupeIDs(req.Members, "")
	if err := s.checkMembersExist(memberIDs); err != nil {
		return models.Project{}, err
	}

	if name != "" {
		if err := s.projectRepo.Rename(projectID, name); err != nil {
			return models.Project{}, err
		}
	}
	if len(memberIDs) > 0 {
		if err := s.projectRepo.AddMembers(projectID, memberIDs); err != nil {
			return models.Project{}, err
		}
	}

	return s.projectRepo.FindByID(projectID)
}

// Delete removes the project together with its bugs and memberships.
// Permitted for the project creator or any team leader.
func (s *ProjectService) Delete(projectID string, actor models.User) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	if !CanManageProject(project, actor) {
		return models.NewForbiddenError("only the project creator or a team leader can delete a project")
	}
	return s.projectRepo.Delete(projectID)
}

// checkMembersExist rejects ids that don't reference a user
func (s *ProjectService) checkMembersExist(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.userRepo.CountByIDs(ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return models.NewValidationError("one or more member ids do not match a user")
	}
	return nil
}

// dedupeIDs removes duplicates and the excluded id while keeping order
func dedupeIDs(ids []string, exclude string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == exclude || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
