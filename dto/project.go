package dto

// CreateProjectRequest carries the payload for a new project. Members are
// optional user ids added alongside the creator.
type CreateProjectRequest struct {
	Name    string   `json:"name" binding:"required"`
	Members []string `json:"members"`
}

// UpdateProjectRequest renames a project and/or merges new members into it.
// Both fields are optional but at least one must be present.
type UpdateProjectRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}
