package services

import (
	"testing"

	"github.com/bugtrack-simple/models"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		action Action
		want   bool
	}{
		{"manager creates project", models.RoleManager, ActionCreateProject, true},
		{"team leader cannot create project", models.RoleTeamLeader, ActionCreateProject, false},
		{"developer cannot create project", models.RoleDeveloper, ActionCreateProject, false},

		{"team leader manages projects", models.RoleTeamLeader, ActionManageProject, true},
		{"manager does not manage others projects by role", models.RoleManager, ActionManageProject, false},
		{"developer does not manage projects", models.RoleDeveloper, ActionManageProject, false},

		{"manager creates bug", models.RoleManager, ActionCreateBug, true},
		{"team leader creates bug", models.RoleTeamLeader, ActionCreateBug, true},
		{"developer cannot create bug", models.RoleDeveloper, ActionCreateBug, false},

		{"developer edits bug", models.RoleDeveloper, ActionEditBug, true},
		{"developer resolves bug", models.RoleDeveloper, ActionResolveBug, true},
		{"developer deletes bug", models.RoleDeveloper, ActionDeleteBug, true},

		{"unknown role denied", models.Role("intern"), ActionCreateBug, false},
		{"unknown action denied", models.RoleManager, Action("bug:assign"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allows(tt.role, tt.action); got != tt.want {
				t.Errorf("Allows(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}

func TestCanManageProject(t *testing.T) {
	project := models.Project{ID: "p1", CreatedByID: "owner-1"}

	tests := []struct {
		name  string
		actor models.User
		want  bool
	}{
		{"creator always manages", models.User{ID: "owner-1", Role: models.RoleManager}, true},
		{"developer creator manages own project", models.User{ID: "owner-1", Role: models.RoleDeveloper}, true},
		{"team leader manages any project", models.User{ID: "someone-else", Role: models.RoleTeamLeader}, true},
		{"other manager denied", models.User{ID: "someone-else", Role: models.RoleManager}, false},
		{"other developer denied", models.User{ID: "someone-else", Role: models.RoleDeveloper}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManageProject(project, tt.actor); got != tt.want {
				t.Errorf("CanManageProject = %v, want %v", got, tt.want)
			}
		})
	}
}
