package dto

import "github.com/bugtrack-simple/models"

// BugRequest carries the payload for creating or editing a bug.
type BugRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Priority    models.Priority `json:"priority"`
}
