package services

import "github.com/bugtrack-simple/models"

// Action identifies an operation subject to role-based authorization.
type Action string

const (
	ActionCreateProject Action = "project:create"
	ActionManageProject Action = "project:manage" // rename, add members, delete
	ActionCreateBug     Action = "bug:create"
	ActionEditBug       Action = "bug:edit"
	ActionResolveBug    Action = "bug:resolve" // close and reopen
	ActionDeleteBug     Action = "bug:delete"
)

// rolePolicy is the authorization matrix. Project management additionally
// allows the project creator regardless of role, see CanManageProject.
// Developers may edit, resolve and delete bugs but not file them.
var rolePolicy = map[Action]map[models.Role]bool{
	ActionCreateProject: {
		models.RoleManager: true,
	},
	ActionManageProject: {
		models.RoleTeamLeader: true,
	},
	ActionCreateBug: {
		models.RoleManager:    true,
		models.RoleTeamLeader: true,
	},
	ActionEditBug: {
		models.RoleManager:    true,
		models.RoleTeamLeader: true,
		models.RoleDeveloper:  true,
	},
	ActionResolveBug: {
		models.RoleManager:    true,
		models.RoleTeamLeader: true,
		models.RoleDeveloper:  true,
	},
	ActionDeleteBug: {
		models.RoleManager:    true,
		models.RoleTeamLeader: true,
		models.RoleDeveloper:  true,
	},
}

// Allows reports whether the role may perform the action.
func Allows(role models.Role, action Action) bool {
	return rolePolicy[action][role]
}

// CanManageProject reports whether the actor may rename, extend or delete
// the project: its creator always can, team leaders can for any project.
func CanManageProject(project models.Project, actor models.User) bool {
	return project.CreatedByID == actor.ID || Allows(actor.Role, ActionManageProject)
}
